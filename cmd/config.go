package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaHost               string
	KafkaConsumerGroup      string
	KafkaNotificationsTopic string
	NotificationSenderKey   string
	NotificationWorkerJobs  int
}
