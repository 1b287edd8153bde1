package models

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/stretchr/testify/require"
)

func TestToBoolean(t *testing.T) {
	tests := []struct {
		raw     any
		want    bool
		wantErr bool
	}{
		{raw: true, want: true},
		{raw: false, want: false},
		{raw: "true", want: true},
		{raw: " FALSE ", want: false},
		{raw: "1", want: true},
		{raw: 1, want: true},
		{raw: 0, want: false},
		{raw: float64(1), want: true},
		{raw: float64(0), want: false},
		{raw: "yes", wantErr: true},
		{raw: nil, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ToBooleanE(tt.raw)
		if tt.wantErr {
			require.Error(t, err, "raw %#v", tt.raw)
			require.False(t, ToBoolean(tt.raw))
			continue
		}
		require.NoError(t, err, "raw %#v", tt.raw)
		require.Equal(t, tt.want, got, "raw %#v", tt.raw)
		require.Equal(t, tt.want, ToBoolean(tt.raw))
	}
}

func TestToFloat(t *testing.T) {
	require.Equal(t, 12.5, ToFloat(12.5))
	require.Equal(t, 3.0, ToFloat(3))
	require.Equal(t, 12.5, ToFloat("12.5"))
	require.Equal(t, 7.0, ToFloat(" 7 "))
	require.Equal(t, 0.0, ToFloat(nil))
	require.Equal(t, 0.0, ToFloat("abc"))

	_, err := ToFloatE("abc")
	require.Error(t, err)
}

func TestToInteger(t *testing.T) {
	require.Equal(t, int64(42), ToInteger(42))
	require.Equal(t, int64(42), ToInteger(float64(42)))
	require.Equal(t, int64(42), ToInteger("42"))
	require.Equal(t, int64(3), ToInteger("3.9"))
	require.Equal(t, int64(3), ToInteger(3.9))
	require.Equal(t, int64(0), ToInteger(nil))

	_, err := ToIntegerE("forty-two")
	require.Error(t, err)
	require.Contains(t, err.Error(), "forty-two")

	t.Run("out of range", func(t *testing.T) {
		for _, raw := range []any{1e20, -1e20, "1e20", float32(1e19), uint64(math.MaxUint64), math.NaN()} {
			_, err := ToIntegerE(raw)
			require.Error(t, err, "%v", raw)
			require.Contains(t, err.Error(), "out of range")
		}

		require.Equal(t, int64(0), ToInteger(1e20))
		require.Equal(t, int64(math.MaxInt64), ToInteger(uint64(math.MaxInt64)))
		require.Equal(t, int64(-9007199254740992), ToInteger(-9007199254740992.0))
	})
}

func TestToDate(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	t.Run("string without zone is read in location", func(t *testing.T) {
		got, err := ToDateE("2024-03-01T08:00:00", berlin)
		require.NoError(t, err)
		require.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, berlin), got)
	})

	t.Run("string with zone keeps the instant", func(t *testing.T) {
		got, err := ToDateE("2024-03-01T08:00:00Z", berlin)
		require.NoError(t, err)
		require.True(t, got.Equal(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)))
	})

	t.Run("date only", func(t *testing.T) {
		got, err := ToDateE("2024-03-01", time.UTC)
		require.NoError(t, err)
		require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("time value", func(t *testing.T) {
		in := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		got, err := ToDateE(in, nil)
		require.NoError(t, err)
		require.True(t, got.Equal(in))
	})

	t.Run("empty and absent", func(t *testing.T) {
		_, err := ToDateE("", time.UTC)
		require.Error(t, err)
		require.True(t, ToDate(nil, time.UTC).IsZero())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ToDateE("next tuesday", time.UTC)
		require.Error(t, err)
		require.True(t, ToDate("next tuesday", time.UTC).IsZero())
	})
}

func TestToDuration(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    Duration
		wantErr bool
	}{
		{name: "seconds", raw: float64(28800), want: Duration{Value: 8, Units: Hours}},
		{name: "integer seconds", raw: 5400, want: Duration{Value: 1.5, Units: Hours}},
		{name: "numeric string", raw: "3600", want: Duration{Value: 1, Units: Hours}},
		{name: "mpx notation", raw: "3ed", want: Duration{Value: 3, Units: ElapsedDays}},
		{name: "mpx with space", raw: "2.5 d", want: Duration{Value: 2.5, Units: Days}},
		{name: "object", raw: map[string]any{"value": 2.0, "units": "WEEKS"}, want: Duration{Value: 2, Units: Weeks}},
		{name: "duration value", raw: Duration{Value: 4, Units: Minutes}, want: Duration{Value: 4, Units: Minutes}},
		{name: "absent", raw: nil, want: Duration{Units: Hours}, wantErr: true},
		{name: "bad unit", raw: "3 fortnights", want: Duration{Units: Hours}, wantErr: true},
		{name: "bad object", raw: map[string]any{"value": "x", "units": "h"}, want: Duration{Units: Hours}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDurationE(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, tt.want, ToDuration(tt.raw))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, ToDuration(tt.raw))
		})
	}
}

func TestToGUID(t *testing.T) {
	id := uuid.MustParse("0f2a4b39-91c5-4dc8-8a62-6f1ad0c7a3b1")

	require.Equal(t, id, ToGUID("0f2a4b39-91c5-4dc8-8a62-6f1ad0c7a3b1"))
	require.Equal(t, id, ToGUID("{0f2a4b39-91c5-4dc8-8a62-6f1ad0c7a3b1}"))
	require.Equal(t, uuid.Nil, ToGUID("not-a-guid"))
	require.Equal(t, uuid.Nil, ToGUID(nil))
}

func TestConvert(t *testing.T) {
	loc := time.UTC

	require.Equal(t, true, Convert(schema.TypeBoolean, "true", loc))
	require.Equal(t, 1.25, Convert(schema.TypeFloat, "1.25", loc))
	require.Equal(t, int64(7), Convert(schema.TypeInteger, float64(7), loc))
	require.Equal(t, time.Date(2024, 1, 2, 9, 0, 0, 0, loc), Convert(schema.TypeDate, "2024-01-02T09:00:00", loc))
	require.Equal(t, Duration{Value: 2, Units: Hours}, Convert(schema.TypeDuration, 7200, loc))
	require.Equal(t, "hello", Convert(schema.TypeString, "hello", loc))

	t.Run("strings pass through untouched", func(t *testing.T) {
		require.Equal(t, 12.0, Convert(schema.TypeString, 12.0, loc))
	})

	t.Run("absent yields the empty value", func(t *testing.T) {
		for _, ft := range []schema.FieldType{schema.TypeBoolean, schema.TypeFloat, schema.TypeInteger, schema.TypeDate, schema.TypeDuration, schema.TypeString} {
			require.Equal(t, Empty(ft), Convert(ft, nil, loc), "type %s", ft)
		}
	})

	t.Run("malformed yields the empty value", func(t *testing.T) {
		require.Equal(t, float64(0), Convert(schema.TypeFloat, "abc", loc))
		require.Nil(t, Convert(schema.TypeDate, "abc", loc))

		_, err := ConvertE(schema.TypeInteger, "abc", loc)
		require.Error(t, err)
	})
}
