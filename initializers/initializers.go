package initializers

import (
	"context"

	"hiring-hare-backend/config"
	"hiring-hare-backend/fiberlog"
	approvalhandler "hiring-hare-backend/lib/approval"
	authhandler "hiring-hare-backend/lib/auth"
	candidatehandler "hiring-hare-backend/lib/candidate"
	dictshandler "hiring-hare-backend/lib/dicts"
	"hiring-hare-backend/lib/notify"
	postinghandler "hiring-hare-backend/lib/posting"
	"hiring-hare-backend/lib/rbac"
	requirementhandler "hiring-hare-backend/lib/requirement"
	usershandler "hiring-hare-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	rbac.NewHandler()
	notify.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	dictshandler.NewHandler()
	requirementhandler.NewHandler()
	approvalhandler.NewHandler()
	postinghandler.NewHandler()
	candidatehandler.NewHandler()
}
