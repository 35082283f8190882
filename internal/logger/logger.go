// Package logger is the leveled logger used by the ratio command. Messages
// can be narrowed with an RE2 filter and repeated messages capped by a
// limiter.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int32 = INFO
	limiter int64
	filter  atomic.Value // *regexp.Regexp
	counter atomic.Value // *hashmap.HashMap
	std     = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	counter.Store(&hashmap.HashMap{})
}

func SetLevel(l int) {
	atomic.StoreInt32(&level, int32(l))
}

func Level() int {
	return int(atomic.LoadInt32(&level))
}

// SetLimiter caps how many times an identical message is printed. Zero
// means no cap. Setting it resets the counts.
func SetLimiter(l int) {
	atomic.StoreInt64(&limiter, int64(l))
	counter.Store(&hashmap.HashMap{})
}

func SetFilter(pattern string) error {
	if pattern == "" {
		filter.Store((*regexp.Regexp)(nil))
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter.Store(reg)
	return nil
}

func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func SetFlags(flags int) {
	std.SetFlags(flags)
}

func Errorf(format string, v ...interface{}) {
	printfAtLevel(ERROR, format, v...)
}

func Printf(format string, v ...interface{}) {
	printfAtLevel(INFO, format, v...)
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if Level() < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	std.Print(out)
}

func limiterAvailable(out string) bool {
	limit := atomic.LoadInt64(&limiter)
	if limit == 0 {
		return true
	}
	var i int64
	m := counter.Load().(*hashmap.HashMap)
	val, _ := m.GetOrInsert(out, &i)
	actual := val.(*int64)
	return atomic.AddInt64(actual, 1) <= limit
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	reg, _ := filter.Load().(*regexp.Regexp)
	if reg == nil || reg.MatchString(out) {
		return out
	}
	return ""
}
