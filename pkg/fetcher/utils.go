package fetcher

import "time"

func durationHumanized(duration time.Duration) string {
	return time.Time{}.Add(duration).Format("15:04:05")
}
