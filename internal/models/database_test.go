package models_test

import (
	"github.com/google/uuid"
	"github.com/hourlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	_, err := models.Connect("/this/path/does/not/exist/database.db")
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestNotFoundRewritten() {
	err := suite.db.First(&models.Project{}, uuid.New()).Error
	require.NotNil(suite.T(), err)

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "project")
}

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	models.Close(suite.db)

	var projects []models.Project
	err := suite.db.Find(&projects).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
