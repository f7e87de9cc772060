package helper

import (
	"fmt"
	"sync"
)

// dayLock menserialisasi cek-keberadaan + insert absensi per (karyawan, tanggal),
// supaya dua request check-in yang datang bersamaan tidak lolos dua-duanya
// melewati pengecekan "sudah absen hari ini". Entry dihapus lagi begitu tidak
// ada yang menunggu, jadi map-nya tidak tumbuh seiring hari berganti.
type dayLock struct {
	mu   sync.Mutex
	refs int
}

var (
	dayLocksMu sync.Mutex
	dayLocks   = map[string]*dayLock{}
)

// LockUserDay mengunci kombinasi (karyawan, tanggal) dan mengembalikan fungsi
// pelepasnya. Pakai: defer helper.LockUserDay(id, tgl)()
func LockUserDay(karyawanId int64, tanggal string) func() {
	key := fmt.Sprintf("%d:%s", karyawanId, tanggal)

	dayLocksMu.Lock()
	lock, ok := dayLocks[key]
	if !ok {
		lock = &dayLock{}
		dayLocks[key] = lock
	}
	lock.refs++
	dayLocksMu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		dayLocksMu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(dayLocks, key)
		}
		dayLocksMu.Unlock()
	}
}
