package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	ENV         string     `json:"env" mapstructure:"env"`
	Port        string     `json:"port" mapstructure:"port"`
	MaxPoolSize int        `json:"max_pool_size" mapstructure:"max_pool_size"`
	MongoURI    string     `json:"mongo_uri" mapstructure:"mongo_uri"`
	MongoDB     string     `json:"mongo_db" mapstructure:"mongo_db"`
	Gateway     Gateway    `json:"gateway" mapstructure:"gateway"`
	Commission  Commission `json:"commission" mapstructure:"commission"`
	Alert       Alert      `json:"alert" mapstructure:"alert"`
}

// Gateway holds the acquiring-bank credentials and endpoints. Loaded once at
// startup and shared read-only across all requests.
type Gateway struct {
	Uri            string `json:"uri" mapstructure:"uri"`
	ClientCode     string `json:"client_code" mapstructure:"client_code"`
	Username       string `json:"username" mapstructure:"username"`
	Password       string `json:"password" mapstructure:"password"`
	Guid           string `json:"guid" mapstructure:"guid"`
	SuccessUrl     string `json:"success_url" mapstructure:"success_url"`
	ErrorUrl       string `json:"error_url" mapstructure:"error_url"`
	TimeoutSeconds int    `json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// Commission configures the surcharge applied to multi-installment payments.
type Commission struct {
	InstallmentRate float64 `json:"installment_rate" mapstructure:"installment_rate"`
}

// Alert configures the ops channel used when the gateway violates its wire
// contract. Disabled when the token is empty.
type Alert struct {
	TelegramToken     string `json:"telegram_token" mapstructure:"telegram_token"`
	TelegramChannelId int64  `json:"telegram_channel_id" mapstructure:"telegram_channel_id"`
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
