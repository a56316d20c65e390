// Package models defines the database models for the gateway registry.
package models

// Parameter names written for every gateway connection.
const (
	ParamHostname   = "hostname"
	ParamPort       = "port"
	ParamUsername   = "username"
	ParamPassword   = "password"
	ParamIgnoreCert = "ignore-cert"
	ParamSecurity   = "security"
)

// Connection is a gateway connection definition. The name is the join key to
// the managed instance carrying the same Name tag; every active connection
// must reference such an instance, while the inverse does not hold during the
// launch-to-address window or after a partial provisioning attempt.
type Connection struct {
	ConnectionID   uint   `json:"connection_id" gorm:"column:connection_id;primaryKey;autoIncrement"`
	ConnectionName string `json:"connection_name" gorm:"column:connection_name;uniqueIndex;size:128;not null"`
	Protocol       string `json:"protocol" gorm:"column:protocol;size:32;not null"`
}

// TableName maps the model onto the gateway's own table.
func (Connection) TableName() string {
	return "guacamole_connection"
}

// ConnectionParameter is one name/value row of a connection's parameter set.
type ConnectionParameter struct {
	ConnectionID   uint   `json:"connection_id" gorm:"column:connection_id;primaryKey;autoIncrement:false"`
	ParameterName  string `json:"parameter_name" gorm:"column:parameter_name;primaryKey;size:128"`
	ParameterValue string `json:"parameter_value" gorm:"column:parameter_value;size:4096"`
}

// TableName maps the model onto the gateway's own table.
func (ConnectionParameter) TableName() string {
	return "guacamole_connection_parameter"
}
