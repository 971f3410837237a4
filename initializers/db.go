package initializers

import (
	"hiring-hare-backend/config"
	"hiring-hare-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	if err := db.PreloadDB(); err != nil {
		panic(err.Error())
	}
}
