package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON wraps gorm.io/datatypes.JSON with per-dialect column type mapping.
// Snapshot columns (form ids, general information, draft payloads) use it so
// the same models migrate cleanly on every supported database.
type JSON struct {
	datatypes.JSON
}

// NewJSON marshals v into a JSON column value. A marshal failure yields an
// empty column rather than an error; callers marshal known-serializable types.
func NewJSON(v interface{}) JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return JSON{}
	}
	return JSON{datatypes.JSON(b)}
}

// Decode unmarshals the column value into out.
func (j JSON) Decode(out interface{}) error {
	if len(j.JSON) == 0 {
		return nil
	}
	return json.Unmarshal(j.JSON, out)
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// This resolves the issue where MSSQL does not support the 'json' data type.
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
