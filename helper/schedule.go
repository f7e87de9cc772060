package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Seluruh deployment pakai satu zona waktu: WIB (UTC+7). Tidak ada DST,
// tidak ada timezone per user.
const WIBOffsetHours = 7

var ErrInvalidTimeFormat = errors.New("format jam harus HH:MM")

// ToLocalTime menggeser instant UTC ke jam dinding WIB.
func ToLocalTime(ts time.Time) time.Time {
	return ts.UTC().Add(WIBOffsetHours * time.Hour)
}

// LocalDate mengembalikan tanggal kalender WIB ("2006-01-02") dari sebuah instant.
func LocalDate(ts time.Time) string {
	return ToLocalTime(ts).Format("2006-01-02")
}

// ParseHHMM mengubah "08:00" menjadi menit-sejak-tengah-malam (480).
func ParseHHMM(raw string) (int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidTimeFormat
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidTimeFormat
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return hour*60 + minute, nil
}

// ValidateScheduleTimes memastikan jam pulang benar-benar setelah jam masuk.
func ValidateScheduleTimes(checkIn, checkOut string) error {
	in, err := ParseHHMM(checkIn)
	if err != nil {
		return fmt.Errorf("jam masuk: %w", err)
	}
	out, err := ParseHHMM(checkOut)
	if err != nil {
		return fmt.Errorf("jam pulang: %w", err)
	}
	if out <= in {
		return errors.New("jam pulang harus lebih besar dari jam masuk")
	}
	return nil
}

// LatenessInfo hasil perbandingan waktu aktual vs jadwal.
// Minutes hanya bermakna kalau flag-nya true; "tidak telat" bukan "telat 0 menit".
type LatenessInfo struct {
	IsLate        bool
	IsEarly       bool
	Minutes       int
	ScheduledTime string
}

// ResolveLateness menghitung keterlambatan check-in terhadap jam masuk jadwal.
// Timestamp digeser dulu ke WIB sebelum dibandingkan menit-demi-menit.
func ResolveLateness(checkInTime string, ts time.Time) (LatenessInfo, error) {
	scheduled, err := ParseHHMM(checkInTime)
	if err != nil {
		return LatenessInfo{}, err
	}

	local := ToLocalTime(ts)
	actual := local.Hour()*60 + local.Minute()

	info := LatenessInfo{ScheduledTime: checkInTime}
	if actual > scheduled {
		info.IsLate = true
		info.Minutes = actual - scheduled
	}
	return info, nil
}

// ResolveEarliness menghitung kepulangan-lebih-awal terhadap jam pulang jadwal.
func ResolveEarliness(checkOutTime string, ts time.Time) (LatenessInfo, error) {
	scheduled, err := ParseHHMM(checkOutTime)
	if err != nil {
		return LatenessInfo{}, err
	}

	local := ToLocalTime(ts)
	actual := local.Hour()*60 + local.Minute()

	info := LatenessInfo{ScheduledTime: checkOutTime}
	if actual < scheduled {
		info.IsEarly = true
		info.Minutes = scheduled - actual
	}
	return info, nil
}
