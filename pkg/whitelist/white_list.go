package whitelist

import (
	"net"
	"regexp"
	"sort"
	"sync"
)

// List holds the ip patterns allowed to call the service.
type List struct {
	mu  sync.RWMutex
	ips map[string]*regexp.Regexp
}

func New(patterns []string) (*List, error) {
	l := &List{ips: map[string]*regexp.Regexp{}}
	for _, ip := range patterns {
		if err := l.Register(ip); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Verify checks addr, with or without a port, against every pattern.
func (l *List) Verify(addr string) bool {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, r := range l.ips {
		if r.MatchString(addr) {
			return true
		}
	}
	return false
}

func (l *List) Register(ip string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.ips[ip]; ok {
		return nil
	}

	re, err := regexp.Compile("^" + ip + "$")
	if err != nil {
		return err
	}
	l.ips[ip] = re
	return nil
}

func (l *List) Remove(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.ips, ip)
}

func (l *List) Patterns() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	list := make([]string, 0, len(l.ips))
	for ip := range l.ips {
		list = append(list, ip)
	}
	sort.Strings(list)
	return list
}
