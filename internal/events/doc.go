// Package events provides types and interfaces for an event-driven architecture.
//
// Services publish a ChangeEvent after every successful mutation without knowing
// which handlers will process it. The in-memory emitter fans events out to the
// registered handlers; LoggingHandler turns them into audit log lines.
package events
