package web

import (
	"fmt"
	"time"
)

// RelativeTime formats how long ago t was, relative to now. Tiers, from
// coarsest: days, hours, minutes, then "just now" for anything under a minute.
func RelativeTime(now, t time.Time) string {
	delta := now.Sub(t)

	days := int(delta / (24 * time.Hour))
	switch {
	case days > 1:
		return fmt.Sprintf("%d days ago", days)
	case days == 1:
		return "1 day ago"
	}

	if delta >= time.Hour {
		hours := int(delta / time.Hour)
		if hours > 1 {
			return fmt.Sprintf("%d hours ago", hours)
		}
		return "1 hour ago"
	}

	if delta >= time.Minute {
		minutes := int(delta / time.Minute)
		if minutes > 1 {
			return fmt.Sprintf("%d minutes ago", minutes)
		}
		return "1 minute ago"
	}

	return "just now"
}
