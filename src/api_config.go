package main

import (
	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/pkg/rabbitmq"
)

type ApiConfigJson struct {
	LoggerConf   logger.LoggerConfigJson    `json:"logger"`
	RabbitmqConf rabbitmq.RabbimqConfigJson `json:"rabbitmq"`
	RestConf     ApiRestConfigJson          `json:"rest"`
	DatabaseConf ApiDatabaseConfigJson      `json:"database"`
}

func (acj ApiConfigJson) ConvertToDomain() ApiConfig {
	return ApiConfig{
		LoggerConf:   acj.LoggerConf.ConvertToDomain(),
		RabbitmqConf: acj.RabbitmqConf.ConvertToDomain(),
		RestConf:     acj.RestConf.ConvertToDomain(),
		DatabaseConf: acj.DatabaseConf.ConvertToDomain(),
	}
}

type ApiConfig struct {
	LoggerConf   logger.LoggerConfig
	RabbitmqConf rabbitmq.RabbitmqConfig
	RestConf     ApiRestConfig
	DatabaseConf ApiDatabaseConfig
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConf
}

func (ac ApiConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return ac.RabbitmqConf
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestConf.Port
}

func (ac ApiConfig) GetDatabaseConnectionString() string {
	return ac.DatabaseConf.ConnectionString
}

func (ac ApiConfig) GetAllowedOrigin() string {
	return ac.RestConf.AllowedOrigin
}

type ApiRestConfigJson struct {
	Port          uint16 `json:"port"`
	AllowedOrigin string `json:"allowed_origin"`
}

type ApiRestConfig struct {
	Port          uint16
	AllowedOrigin string
}

func (arcj ApiRestConfigJson) ConvertToDomain() ApiRestConfig {
	return ApiRestConfig{
		Port:          arcj.Port,
		AllowedOrigin: arcj.AllowedOrigin,
	}
}

type ApiDatabaseConfigJson struct {
	ConnectionString string `json:"connection_string"`
}

type ApiDatabaseConfig struct {
	ConnectionString string
}

func (adcj ApiDatabaseConfigJson) ConvertToDomain() ApiDatabaseConfig {
	return ApiDatabaseConfig{
		ConnectionString: adcj.ConnectionString,
	}
}
