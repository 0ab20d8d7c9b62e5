package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBConnDSN(t *testing.T) {
	conn := &DBConn{
		ConnectionConfig: ConnectionConfig{
			Host:     "localhost",
			Port:     "5432",
			UserName: "postgres",
			Password: "secret",
		},
		DBName:  "userhub",
		SSLMode: "require",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=userhub sslmode=require",
		conn.DSN())
}

func TestDBConnDSNDefaultsSSLMode(t *testing.T) {
	conn := &DBConn{
		ConnectionConfig: ConnectionConfig{Host: "db", Port: "5432", UserName: "u", Password: "p"},
		DBName:           "userhub",
	}

	assert.Contains(t, conn.DSN(), "sslmode=disable")
}

func TestDBConnReplicaDSNsInheritDatabase(t *testing.T) {
	conn := &DBConn{
		ConnectionConfig: ConnectionConfig{Host: "primary", Port: "5432", UserName: "u", Password: "p"},
		DBName:           "userhub",
		SSLMode:          "disable",
		Replicas: []ConnectionConfig{
			{Host: "replica-0", Port: "5433", UserName: "ro", Password: "p"},
		},
	}

	dsns := conn.ReplicaDSNs()
	assert.Len(t, dsns, 1)
	assert.Contains(t, dsns[0], "host=replica-0")
	assert.Contains(t, dsns[0], "dbname=userhub")
}
