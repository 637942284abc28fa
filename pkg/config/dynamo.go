package config

import (
	"fmt"
	"strings"
	"time"
)

// DynamoConfig holds the connection settings for the DynamoDB table backing the service.
type DynamoConfig struct {
	Region          string        `koanf:"region"`
	Table           string        `koanf:"table"`
	NameIndex       string        `koanf:"nameIndex"`
	Endpoint        string        `koanf:"endpoint"`
	AccessKeyID     string        `koanf:"accessKeyId"`
	SecretAccessKey string        `koanf:"secretAccessKey"`
	Timeout         time.Duration `koanf:"timeout"`
}

// String returns a string representation of the DynamoDB configuration with credentials masked.
func (c *DynamoConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- DynamoDB ---\n")
	b.WriteString(fmt.Sprintf("  region: %s\n", c.Region))
	b.WriteString(fmt.Sprintf("  table: %s\n", c.Table))
	b.WriteString(fmt.Sprintf("  nameIndex: %s\n", c.NameIndex))
	b.WriteString(fmt.Sprintf("  endpoint: %s\n", c.Endpoint))
	b.WriteString(fmt.Sprintf("  accessKeyId: %s\n", mask(c.AccessKeyID)))
	b.WriteString(fmt.Sprintf("  secretAccessKey: %s\n", mask(c.SecretAccessKey)))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func mask(s string) string {
	if s == "" {
		return "<not configured>"
	}
	return "****"
}

func (c *DynamoConfig) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("dynamodb region is not configured")
	}
	if c.Table == "" {
		return fmt.Errorf("dynamodb table is not configured")
	}
	if c.NameIndex == "" {
		return fmt.Errorf("dynamodb name index is not configured")
	}
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return fmt.Errorf("dynamodb credentials must be configured as a pair")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid dynamodb connect timeout: %v", c.Timeout)
	}
	return nil
}
