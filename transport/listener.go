/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package transport

import (
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
)

// Listen binds port and blocks until a single connect-back shell connects,
// returning it wrapped as a Tube. Used for --listen.
func Listen(port int, logger *zap.Logger) (*Tube, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return nil, fmt.Errorf("accept connection: %w", err)
	}
	return NewTube(conn, logger), nil
}

// Reverse dials target:port, where a listener shell is expected to be
// waiting. Used for --reverse --target T.
func Reverse(target string, port int, logger *zap.Logger) (*Tube, error) {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("%s:%d", target, port), 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("dial %s:%d: %w", target, port, err)
	}
	return NewTube(conn, logger), nil
}
