package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// ConnectionLimiter caps the number of concurrent sessions per remote IP.
type ConnectionLimiter struct {
	maxPerIP int

	mu        sync.Mutex
	ipCounter map[string]int
}

func NewConnectionLimiter(maxPerIP int) *ConnectionLimiter {
	return &ConnectionLimiter{
		maxPerIP:  maxPerIP,
		ipCounter: make(map[string]int),
	}
}

// Acquire reserves a slot for ip and reports the count after the attempt.
func (cl *ConnectionLimiter) Acquire(ip string) (bool, int) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.ipCounter[ip] >= cl.maxPerIP {
		return false, cl.ipCounter[ip]
	}
	cl.ipCounter[ip]++
	return true, cl.ipCounter[ip]
}

func (cl *ConnectionLimiter) Release(ip string) int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.ipCounter[ip]--
	if cl.ipCounter[ip] <= 0 {
		delete(cl.ipCounter, ip)
		return 0
	}
	return cl.ipCounter[ip]
}

func (cl *ConnectionLimiter) Count(ip string) int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.ipCounter[ip]
}

// Middleware rejects sessions from IPs that already hold maxPerIP sessions.
func (cl *ConnectionLimiter) Middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := RemoteIP(s.RemoteAddr())

		ok, count := cl.Acquire(ip)
		if !ok {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", count+1, "current_limit", cl.maxPerIP)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (%d/%d). Please try again later.\r\n", count+1, cl.maxPerIP)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}

		log.Info("Connection accepted", "ip", ip, "current_count", count, "limit", cl.maxPerIP)
		defer func() {
			log.Info("Connection closed", "ip", ip, "count_after", cl.Release(ip))
		}()
		next(s)
	}
}

func RemoteIP(addr net.Addr) string {
	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		return tcpAddr.IP.String()
	}
	return addr.String()
}
