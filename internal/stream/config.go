package stream

// PayloadField is the stream entry field carrying a YAML scenario document.
const PayloadField = "payload"

type Config struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	Group         string
	ConsumerName  string
}

func NewConfig(redisAddr string, redisPassword string, stream string, group string, consumerName string) *Config {
	return &Config{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        stream,
		Group:         group,
		ConsumerName:  consumerName,
	}
}
