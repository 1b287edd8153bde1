package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/spf13/cast"
)

// DefaultDateFormat is used when FormatOptions leaves DateFormat empty.
const DefaultDateFormat = "2006-01-02 15:04"

// FormatOptions controls how typed values are printed.
type FormatOptions struct {
	DateFormat string
	Location   *time.Location
}

func (o FormatOptions) dateFormat() string {
	if o.DateFormat == "" {
		return DefaultDateFormat
	}
	return o.DateFormat
}

// FormatValue prints a converted field value for humans. Absent values
// (nil, the zero time) print as an empty string.
func FormatValue(v any, opts FormatOptions) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case float64:
		return humanize.CommafWithDigits(math.Round(val*100)/100, 2)
	case int64:
		return strconv.FormatInt(val, 10)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		if opts.Location != nil {
			val = val.In(opts.Location)
		}
		return val.Format(opts.dateFormat())
	case models.Duration:
		return val.String()
	case string:
		return val
	case []any, map[string]any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		s, err := cast.ToStringE(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return s
	}
}
