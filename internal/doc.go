// Package internal contains the core implementation packages for questoes.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the questoes CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - assemble: Template loading and document assembly with answer-key alignment
//   - compile: Hardened external LaTeX compiler invocation and artifact handling
//   - config: Configuration management with validation
//   - errors: Structured export error types with codes and context
//   - export: Export orchestration across manual and direct modes
//   - logging: Structured logging over log/slog
//   - render: Per-question LaTeX fragment rendering
//   - sanitize: LaTeX command denylist and shell-escape neutralization
//   - store: YAML question-list resolution and validation
//   - validation: Image path sandboxing and output-name validation
//   - watcher: List file monitoring with debouncing
//
// # Design Principles
//
// All internal packages follow these design principles:
//
//   - Security by default with input validation and sanitization
//   - Explicit error returns carrying typed codes and diagnostic context
//   - Testability with unit and property-based test coverage
//   - Observability with structured, component-scoped logging
//
// # Inter-Package Communication
//
// The export package defines the ports (ListResolver, Compiler) that the
// store and compile packages implement; every other dependency flows
// one-way from cmd through export into the leaf packages.
package internal
