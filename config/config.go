// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"strings"

	"github.com/hostgrid/platformconfig/env"
	"github.com/hostgrid/platformconfig/schema"
)

// DefaultPrefix is the vendor prefix for all environment variables the
// accessor cares about.
const DefaultPrefix = "PLATFORM_"

// Config is a read-only view over the platform metadata present in an
// environment snapshot. All state is populated by New and immutable
// afterwards; a Config is safe for concurrent use.
type Config struct {
	snap   *env.Snapshot
	prefix string
	log    *slog.Logger

	valid   bool
	inBuild bool

	routes        RouteTable
	routeOrder    []string
	relationships RelationshipTable
	variables     VariableTable
	application   Application
}

// options holds the resolved configuration for creating a Config.
type options struct {
	environ  map[string]string
	reader   env.Reader
	prefix   string
	logger   *slog.Logger
	validate bool
}

// Option configures the Config created by New.
type Option func(*options)

// WithEnviron supplies the environment mapping to read instead of the real
// process environment. The map is copied at construction. It takes
// precedence over WithReader.
func WithEnviron(vars map[string]string) Option {
	return func(o *options) {
		o.environ = vars
	}
}

// WithReader supplies the environment source to snapshot.
// The default is [env.OSReader].
func WithReader(r env.Reader) Option {
	return func(o *options) {
		o.reader = r
	}
}

// WithPrefix overrides the environment variable prefix.
// The default is [DefaultPrefix].
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLogger sets the logger used for decode-step debug logging.
// The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSchemaValidation enables JSON Schema validation of the decoded
// ROUTES and RELATIONSHIPS payloads. The platform's blobs are normally
// trusted; enable this when diagnosing a broken injection.
func WithSchemaValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// New captures an environment snapshot, detects the deployment phase, and
// decodes the structured platform variables. It returns a *DecodeError if
// any structured variable holds malformed base64 or JSON; in that case no
// Config is produced.
//
// New succeeds even when the process is not running on the platform; the
// resulting Config answers false to IsValidPlatform and gates its
// accessors accordingly.
func New(opts ...Option) (*Config, error) {
	resolved := &options{
		prefix: DefaultPrefix,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(resolved)
	}

	var snap *env.Snapshot
	switch {
	case resolved.environ != nil:
		snap = env.SnapshotOf(resolved.environ)
	case resolved.reader != nil:
		snap = env.Capture(resolved.reader)
	default:
		snap = env.Capture(&env.OSReader{})
	}

	c := &Config{
		snap:   snap,
		prefix: resolved.prefix,
		log:    resolved.logger,

		routes:        RouteTable{},
		relationships: RelationshipTable{},
		variables:     VariableTable{},
		application:   Application{},
	}

	// APPLICATION_NAME is the platform-presence gate; an empty value
	// counts as absent.
	c.valid = c.value("APPLICATION_NAME") != ""
	c.inBuild = c.valid && c.value("ENVIRONMENT") == ""

	if !c.valid {
		c.log.Debug("no platform metadata in environment", "prefix", c.prefix)
		return c, nil
	}

	if err := c.decodeAll(resolved.validate); err != nil {
		return nil, err
	}
	return c, nil
}

// decodeAll populates the structured tables from the snapshot. Routes and
// relationships only exist at runtime; variables and the application
// manifest exist in both phases.
func (c *Config) decodeAll(validate bool) error {
	if !c.inBuild {
		routesValidator, relsValidator := noValidation, noValidation
		if validate {
			routesValidator = schema.ValidateRoutes
			relsValidator = schema.ValidateRelationships
		}

		data, err := c.decodeTable("ROUTES", &c.routes, routesValidator)
		if err != nil {
			return err
		}
		if data != nil {
			order, err := objectKeyOrder(data)
			if err != nil {
				return newDecodeError("ROUTES", err)
			}
			c.routeOrder = order
		}

		if _, err := c.decodeTable("RELATIONSHIPS", &c.relationships, relsValidator); err != nil {
			return err
		}
	}

	if _, err := c.decodeTable("VARIABLES", &c.variables, noValidation); err != nil {
		return err
	}
	if _, err := c.decodeTable("APPLICATION", &c.application, noValidation); err != nil {
		return err
	}
	return nil
}

// IsValidPlatform reports whether the snapshot carries platform metadata
// at all, i.e. whether the prefixed APPLICATION_NAME variable is set and
// non-empty.
func (c *Config) IsValidPlatform() bool {
	return c.valid
}

// InBuild reports whether the snapshot was taken during the build phase:
// a valid platform without the ENVIRONMENT variable.
func (c *Config) InBuild() bool {
	return c.inBuild
}

// InRuntime reports whether the snapshot was taken from a deployed,
// serving environment.
func (c *Config) InRuntime() bool {
	return c.valid && !c.inBuild
}

// OnEnterprise reports whether this is an enterprise-tier environment.
func (c *Config) OnEnterprise() bool {
	return c.valid && c.value("MODE") == "enterprise"
}

// OnProduction reports whether this is the production environment: the
// BRANCH variable matches "production" on enterprise tiers and "master"
// otherwise. It reads BRANCH directly rather than through Property so it
// stays callable during the build phase, where it reports false because
// BRANCH is not set yet.
func (c *Config) OnProduction() bool {
	if !c.valid {
		return false
	}
	prodBranch := "master"
	if c.OnEnterprise() {
		prodBranch = "production"
	}
	return c.value("BRANCH") == prodBranch
}

// value reads a prefixed variable from the snapshot, or "" if unset.
func (c *Config) value(name string) string {
	v, _ := c.lookup(name)
	return v
}

// lookup uppercases name, prepends the prefix, and reads the snapshot.
func (c *Config) lookup(name string) (string, bool) {
	return c.snap.Lookup(c.prefix + strings.ToUpper(name))
}
