package config

type (
	InternalConfig struct {
		App   App
		Coach Coach
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		CardCacheExpiryInMinutes   int
		BlockStateExpiryInMinutes  int
		CommitLockExpiryInSeconds  int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	Coach struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
	}
)
