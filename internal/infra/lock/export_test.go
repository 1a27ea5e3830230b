//go:build unit

package lock

func (l *RedisLock) Key() string {
	return l.key
}
