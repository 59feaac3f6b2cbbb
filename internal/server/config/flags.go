package config

import (
	"flag"
	"os"
	"time"

	"github.com/karnadev/dragonsrealm/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-s string   JWT HMAC secret key
//	-t int      login token validity, minutes
//	-i string   nutrition API app id
//	-k string   nutrition API key
//	-n string   nutrition API base URL
//	-d string   document store ("memory" or "s3")
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration flags
// are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-i", "-k", "-n", "-d", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.NutritionAppID, "i", config.NutritionAppID, "nutrition API app id")
	fs.StringVar(&config.NutritionAPIKey, "k", config.NutritionAPIKey, "nutrition API key")
	fs.StringVar(&config.NutritionBaseURL, "n", config.NutritionBaseURL, "nutrition API base URL")
	fs.StringVar(&config.DocumentStore, "d", config.DocumentStore, "document store (memory or s3)")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
