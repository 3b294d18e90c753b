package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
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
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type InternalConfig struct {
	App       App
	CareStore CareStore
	JWT       JWT
	RabbitMQ  AppRabbitMQ
	Minio     AppMinio
	MongoDB   AppMongoDB
}

type App struct {
	Env                             string
	Port                            string
	Version                         string
	Address                         string
	Timezone                        string
	EndpointPrefix                  string
	MaxRequests                     int
	ShutdownTimeoutInSeconds        int
	MaxTimeRequestsPerSeconds       int
	RequestBodyLimitInMegabyte      int
	LoginSessionExpiredTimeInHours  int
	LoginMaxAttemptsPerMinute       int
	DashboardWidgetTimeoutInSeconds int
}

type CareStore struct {
	BaseUrl                 string
	AnonKey                 string
	RequestTimeoutInSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppRabbitMQ struct {
	MessageSentQueue string
}

type AppMinio struct {
	BucketName                          string
	PreSignedUrlObjectExpiryTimeInHours int
}

type AppMongoDB struct {
	DbName string
}
