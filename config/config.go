package config

import (
	"bytes"
	_ "embed"
	"os"
	"path"
	"runtime"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var configBytes []byte

var _config Config

type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type MysqlConfig struct {
	Url             string `mapstructure:"url"`
	Prefix          string `mapstructure:"prefix"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	SlowThreshold   int    `mapstructure:"slow_threshold"`
}

// ChainConfig is the mutable part of the configuration. Authority can be
// rewritten at runtime by an ownership transfer, so it lives in chain.yaml
// on disk instead of the embedded config.
type ChainConfig struct {
	RpcUrl    string `mapstructure:"rpc_url" yaml:"rpc_url"`
	FeedAddr  string `mapstructure:"feed_addr" yaml:"feed_addr"`
	FixedRate string `mapstructure:"fixed_rate" yaml:"fixed_rate"`
	Authority string `mapstructure:"authority" yaml:"authority"`
	Treasury  string `mapstructure:"treasury" yaml:"treasury"`
	Contract  string `mapstructure:"contract" yaml:"contract"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Port        int    `mapstructure:"port"`
	RoutePrefix string `mapstructure:"route_prefix"`
}

type Config struct {
	App   AppConfig   `yaml:"app"`
	Chain ChainConfig `yaml:"chain"`
	Log   LogConfig   `yaml:"log"`
	Mysql MysqlConfig `yaml:"mysql"`
}

func GetConfig() Config {
	return _config
}

func init() {
	var _conf Config

	conf := viper.New()
	conf.SetConfigType("yaml")

	if err := conf.ReadConfig(bytes.NewBuffer(configBytes)); err != nil {
		panic(err)
	}

	_, filename, _, _ := runtime.Caller(0)

	chainBytes, err := os.ReadFile(path.Join(path.Dir(filename), "chain.yaml"))
	if err != nil {
		panic(err)
	}

	{
		chainConf := viper.New()
		chainConf.SetConfigType("yaml")
		if err := chainConf.ReadConfig(bytes.NewBuffer(chainBytes)); err != nil {
			panic(err)
		}
		if err := chainConf.Sub("chain").Unmarshal(&_conf.Chain); err != nil {
			panic(err)
		}
	}

	{
		logConf := conf.Sub("log")
		if err := logConf.Unmarshal(&_conf.Log); err != nil {
			panic(err)
		}
	}

	{
		mysqlConf := conf.Sub("mysql")
		if err := mysqlConf.Unmarshal(&_conf.Mysql); err != nil {
			panic(err)
		}
	}

	{
		appConf := conf.Sub("app")
		if err := appConf.Unmarshal(&_conf.App); err != nil {
			panic(err)
		}
	}

	_config = _conf
}

// SaveChainConfig persists the chain section after an authority transfer.
func SaveChainConfig(authority string) error {
	chain := _config.Chain
	chain.Authority = authority

	type config struct {
		Chain ChainConfig `yaml:"chain"`
	}

	_conf := config{Chain: chain}
	data, err := yaml.Marshal(_conf)
	if err != nil {
		return err
	}

	if err = os.WriteFile("./config/chain.yaml", data, 0666); err != nil {
		return err
	}

	_config.Chain = chain

	return nil
}
