// Package locker provides keyed mutual exclusion. Holding the lock for a key
// guarantees no other holder of the same key runs concurrently, in this
// process ([LocalLocker]) or across replicas sharing Redis ([RedisLocker]).
package locker
