package models_test

import (
	"github.com/hourlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSettingDefaultsToEmpty() {
	value, err := models.GetSetting(suite.db, models.SettingEmployeeName)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "", value)
}

func (suite *TestSuiteStandard) TestSettingUpsert() {
	err := models.SetSetting(suite.db, models.SettingEmployeeName, "Jane Doe")
	require.Nil(suite.T(), err)

	value, err := models.GetSetting(suite.db, models.SettingEmployeeName)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Jane Doe", value)

	// Writing the same key again overwrites the value
	err = models.SetSetting(suite.db, models.SettingEmployeeName, "John Doe")
	require.Nil(suite.T(), err)

	value, err = models.GetSetting(suite.db, models.SettingEmployeeName)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "John Doe", value)
}

func (suite *TestSuiteStandard) TestSettingKeysIndependent() {
	err := models.SetSetting(suite.db, models.SettingEmployeeName, "Jane Doe")
	require.Nil(suite.T(), err)

	value, err := models.GetSetting(suite.db, models.SettingEmployeeNumber)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "", value)
}

func (suite *TestSuiteStandard) TestSettingUnknownKey() {
	err := models.SetSetting(suite.db, "does-not-exist", "value")
	assert.ErrorIs(suite.T(), err, models.ErrSettingKeyUnknown)

	_, err = models.GetSetting(suite.db, "does-not-exist")
	assert.ErrorIs(suite.T(), err, models.ErrSettingKeyUnknown)
}
