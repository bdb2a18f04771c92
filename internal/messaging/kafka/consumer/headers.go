package consumer

import "github.com/segmentio/kafka-go"

// getHeader returns the last value set for key; "" when absent.
func getHeader(headers []kafka.Header, key string) string {
	for i := len(headers) - 1; i >= 0; i-- {
		if headers[i].Key == key {
			return string(headers[i].Value)
		}
	}
	return ""
}
