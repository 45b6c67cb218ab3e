package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// GetEnvVariable lấy environment variable với fallback default value
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// UnmarshalTask decodes an asynq task payload into dst
func UnmarshalTask(t *asynq.Task, dst interface{}) error {
	if err := json.Unmarshal(t.Payload(), dst); err != nil {
		return fmt.Errorf("json.Unmarshal failed for task %s: %w", t.Type(), err)
	}
	return nil
}

// IsValidUUID - Kiểm tra format UUID hợp lệ
func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}
