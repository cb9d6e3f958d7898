package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "mysql allows multi-statement migrations",
			cfg:  DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Username: "app", Password: "pw", Database: "subscribe"},
			want: "app:pw@tcp(db:3306)/subscribe?charset=utf8mb4&parseTime=True&loc=UTC&multiStatements=true",
		},
		{
			name: "postgres",
			cfg:  DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, Username: "app", Password: "pw", Database: "subscribe"},
			want: "host=db port=5432 user=app password=pw dbname=subscribe sslmode=disable TimeZone=UTC",
		},
		{
			name: "sqlite in memory",
			cfg:  DatabaseConfig{Driver: "sqlite"},
			want: "file::memory:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.GetDSN())
		})
	}
}
