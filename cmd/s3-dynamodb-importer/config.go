package main

import (
	"flag"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// the run modes we support
var modeLambda = "lambda"
var modeQueue = "queue"
var modeEvent = "event"

// ServiceConfig defines all of the service configuration parameters
type ServiceConfig struct {
	TableName   string // the destination DynamoDB table
	Region      string // AWS region, blank for the SDK default
	Mode        string // lambda, queue or event
	InQueueName string // SQS queue receiving S3 notifications (queue mode)
	PollTimeOut int64  // the SQS queue timeout (in seconds)
	EventFile   string // S3 event JSON file, '-' for stdin (event mode)
	Debug       bool
}

// LoadConfiguration will load the service configuration from env/cmdline
// and return a pointer to it. Any failures are fatal.
func LoadConfiguration() *ServiceConfig {

	log.Printf("Loading configuration...")
	var cfg ServiceConfig
	flag.StringVar(&cfg.TableName, "table", envWithDefault("DYNAMODB_TABLE_NAME", ""), "Destination DynamoDB table name")
	flag.StringVar(&cfg.Region, "region", envWithDefault("AWS_REGION", ""), "AWS region")
	flag.StringVar(&cfg.Mode, "mode", envWithDefault("IMPORTER_MODE", defaultMode()), "Run mode (lambda|queue|event)")
	flag.StringVar(&cfg.InQueueName, "inqueue", envWithDefault("IN_QUEUE_NAME", ""), "Inbound notification queue name")
	flag.Int64Var(&cfg.PollTimeOut, "pollwait", envToInt("POLL_TIMEOUT", 20), "Poll wait time (in seconds)")
	flag.StringVar(&cfg.EventFile, "event", envWithDefault("EVENT_FILE", "-"), "S3 event file to import ('-' is stdin)")
	flag.BoolVar(&cfg.Debug, "debug", envToBool("DEBUG", false), "Debug logging")

	flag.Parse()

	if len(cfg.TableName) == 0 {
		log.Fatalf("TableName cannot be blank")
	}

	switch cfg.Mode {
	case modeLambda, modeEvent:
	case modeQueue:
		if len(cfg.InQueueName) == 0 {
			log.Fatalf("InQueueName cannot be blank in %s mode", modeQueue)
		}
	default:
		log.Fatalf("Mode must be one of %s, %s or %s (got %s)", modeLambda, modeQueue, modeEvent, cfg.Mode)
	}

	log.Printf("[CONFIG] TableName            = [%s]", cfg.TableName)
	log.Printf("[CONFIG] Region               = [%s]", cfg.Region)
	log.Printf("[CONFIG] Mode                 = [%s]", cfg.Mode)
	log.Printf("[CONFIG] InQueueName          = [%s]", cfg.InQueueName)
	log.Printf("[CONFIG] PollTimeOut          = [%d]", cfg.PollTimeOut)
	log.Printf("[CONFIG] EventFile            = [%s]", cfg.EventFile)
	log.Printf("[CONFIG] Debug                = [%t]", cfg.Debug)

	return &cfg
}

// running inside Lambda unless told otherwise
func defaultMode() string {
	if len(os.Getenv("AWS_LAMBDA_FUNCTION_NAME")) != 0 {
		return modeLambda
	}
	return modeEvent
}

func envWithDefault(env string, defaultValue string) string {
	val, set := os.LookupEnv(env)
	if set == false || len(val) == 0 {
		return defaultValue
	}
	return val
}

func envToInt(env string, defaultValue int64) int64 {
	str := envWithDefault(env, "")
	if len(str) == 0 {
		return defaultValue
	}
	val, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		log.Fatalf("%s must be an integer (got %s)", env, str)
	}
	return val
}

func envToBool(env string, defaultValue bool) bool {
	str := envWithDefault(env, "")
	if len(str) == 0 {
		return defaultValue
	}
	val, err := strconv.ParseBool(str)
	if err != nil {
		log.Fatalf("%s must be a boolean (got %s)", env, str)
	}
	return val
}

//
// end of file
//
