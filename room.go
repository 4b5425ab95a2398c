// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sort"
	"time"

	"github.com/spf13/afero"

	"github.com/mdhender/musicroom/confstore"
	"github.com/mdhender/musicroom/schema"
)

// CorePart is the part opened by Bootstrap.
const CorePart = "core"

// Options configures a Room.
type Options struct {
	// EnvVar names the environment variable holding the root directory.
	// Default: "MUSICROOM_DIR".
	EnvVar string

	// LookupEnv reads environment variables. Default: os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// ConfigName is the name of the configuration file inside the root
	// directory. Default: "musicroom.conf".
	ConfigName string

	// Version is compared with the "version" entry of the configuration
	// file. Default: SchemaVersion.
	Version string

	// Program is written into the configuration file header.
	// Default: "musicroom" and the package version.
	Program string

	// Variables declares the configuration entries. Default: DefaultVariables().
	Variables []Variable

	// Schema supplies the tables created by CreatePart. Default: schema.Default().
	Schema SchemaProvider

	// Fs holds the configuration file. Default: the operating system.
	// Part backing files always live on the operating system.
	Fs afero.Fs

	// Logger for operational logging. Uses slog.Default() if nil.
	Logger *slog.Logger

	// Now is used for the configuration file header. Default: time.Now.
	Now func() time.Time
}

// defaults returns a copy of opts with default values applied.
func (opts Options) defaults() Options {
	if opts.EnvVar == "" {
		opts.EnvVar = "MUSICROOM_DIR"
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.ConfigName == "" {
		opts.ConfigName = "musicroom.conf"
	}
	if opts.Version == "" {
		opts.Version = SchemaVersion
	}
	if opts.Program == "" {
		opts.Program = "musicroom " + Version().String()
	}
	if opts.Variables == nil {
		opts.Variables = DefaultVariables()
	}
	if opts.Schema == nil {
		opts.Schema = schema.Default()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

// Room is the runtime context shared by every tool that works on a music
// library. It is not safe for concurrent use.
type Room struct {
	opts   Options
	logger *slog.Logger

	phase  Phase
	booted bool
	root   string
	values map[string]string
	vars   map[string]Variable
	parts  map[string]*part
}

// New returns an unconfigured room. Call Bootstrap before anything else.
func New(opts Options) *Room {
	opts = opts.defaults()
	r := &Room{
		opts:   opts,
		logger: opts.Logger,
		vars:   make(map[string]Variable, len(opts.Variables)),
		parts:  make(map[string]*part),
	}
	for _, v := range opts.Variables {
		r.vars[v.Name] = v
	}
	return r
}

// Root returns the root directory, with a trailing slash. It is empty
// until Bootstrap has resolved it.
func (r *Room) Root() string {
	return r.root
}

// ConfigPath returns the path of the configuration file.
func (r *Room) ConfigPath() string {
	return r.root + r.opts.ConfigName
}

// Bootstrap loads the configuration file, if there is one, and opens the
// core part. Without a configuration file the room stays Unconfigured and
// only Configure may be called. Bootstrap may be called once per room.
func (r *Room) Bootstrap(ctx context.Context) error {
	if r.booted {
		return ErrAlreadyBootstrapped
	}
	r.booted = true
	return r.bootstrap(ctx)
}

func (r *Room) bootstrap(ctx context.Context) error {
	root, err := resolveRoot(r.opts.LookupEnv, r.opts.EnvVar)
	if err != nil {
		return err
	}
	r.root = root

	path := r.ConfigPath()
	exists, err := confstore.Exists(r.opts.Fs, path)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if !exists {
		r.logger.Info("room is not configured", "root", root)
		return nil
	}

	values, warnings, err := confstore.Load(r.opts.Fs, path)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	for _, w := range warnings {
		r.logger.Warn("configuration line skipped", "path", path, "line", w.Line, "reason", w.Reason, "text", w.Text)
	}

	got, ok := values["version"]
	if !ok {
		return fmt.Errorf("%s: %w: no version entry", path, ErrVersionMismatch)
	}
	if got != r.opts.Version {
		return fmt.Errorf("%s: %w: file has %q, required %q", path, ErrVersionMismatch, got, r.opts.Version)
	}
	// Files written by older versions may lack entries declared since.
	for _, v := range r.opts.Variables {
		if _, ok := values[v.Name]; !ok && v.Default != "" {
			values[v.Name] = v.Default
		}
	}
	r.values = values

	if err := r.OpenPart(ctx, CorePart); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	r.phase = Active
	r.logger.Info("room is active", "root", root, "version", got)
	return nil
}

// Configure creates the configuration file and the core part, then
// bootstraps the room. values override the declared defaults; variables
// flagged Prompt that are not in values are asked for with p.
//
// Configure refuses to run twice and refuses to overwrite an existing
// configuration file.
func (r *Room) Configure(ctx context.Context, values map[string]string, p Prompter) error {
	switch r.phase {
	case Unconfigured:
	case Configuring:
		return fmt.Errorf("configure: %w: configuration already in progress", ErrAlreadyConfigured)
	default:
		return fmt.Errorf("configure: %w", ErrAlreadyConfigured)
	}

	if r.root == "" {
		root, err := resolveRoot(r.opts.LookupEnv, r.opts.EnvVar)
		if err != nil {
			return err
		}
		r.root = root
	}
	if err := r.checkRoot(); err != nil {
		return err
	}
	path := r.ConfigPath()
	if exists, err := confstore.Exists(r.opts.Fs, path); err != nil {
		return fmt.Errorf("configure: %w", err)
	} else if exists {
		return fmt.Errorf("%s: %w", path, ErrAlreadyConfigured)
	}

	r.phase = Configuring
	r.booted = true
	r.logger.Info("configuring room", "root", r.root)

	settings := make(map[string]string, len(r.opts.Variables))
	for _, v := range r.opts.Variables {
		settings[v.Name] = v.initial()
	}
	settings["version"] = r.opts.Version

	for _, key := range slices.Sorted(maps.Keys(values)) {
		v, ok := r.vars[key]
		if !ok || key == "version" {
			r.logger.Warn("ignoring unknown configuration key", "key", key)
			continue
		}
		value, err := v.normalize(values[key])
		if err != nil {
			r.logger.Warn("ignoring invalid configuration value", "key", key, "error", err)
			continue
		}
		settings[key] = value
	}

	for _, v := range r.opts.Variables {
		if !v.Prompt {
			continue
		}
		if _, ok := values[v.Name]; ok {
			continue
		}
		if p == nil {
			return fmt.Errorf("configure: %w: %s", ErrNoPrompter, v.Name)
		}
		answer, err := p.Prompt(v, settings[v.Name])
		if err != nil {
			return fmt.Errorf("configure: %w", err)
		}
		if answer == "" {
			continue
		}
		value, err := v.normalize(answer)
		if err != nil {
			r.logger.Warn("keeping default for invalid answer", "key", v.Name, "error", err)
			continue
		}
		settings[v.Name] = value
	}

	if err := r.save(settings); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	r.values = settings

	if err := r.CreatePart(ctx, CorePart); err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	return r.bootstrap(ctx)
}

// checkRoot verifies the root directory exists and accepts new files.
func (r *Room) checkRoot() error {
	fs := r.opts.Fs
	ok, err := afero.DirExists(fs, r.root)
	if err != nil || !ok {
		return fmt.Errorf("%s: %w: directory does not exist", r.root, ErrMissingRoot)
	}
	probe, err := afero.TempFile(fs, r.root, ".musicroom-probe-*")
	if err != nil {
		return fmt.Errorf("%s: %w: directory is not writable: %v", r.root, ErrMissingRoot, err)
	}
	name := probe.Name()
	probe.Close()
	if err := fs.Remove(name); err != nil {
		return fmt.Errorf("%s: remove probe: %w", r.root, err)
	}
	return nil
}

// save rewrites the configuration file with settings.
func (r *Room) save(settings map[string]string) error {
	dropped, err := confstore.Save(r.opts.Fs, r.ConfigPath(), settings, confstore.Header{
		Program:   r.opts.Program,
		Generated: r.opts.Now(),
	})
	for _, key := range dropped {
		r.logger.Warn("configuration value cannot be written", "key", key)
	}
	return err
}

// Get returns a configuration value. ok is false for keys that are not set.
func (r *Room) Get(key string) (value string, ok bool, err error) {
	if err := r.RequireActive(); err != nil {
		return "", false, err
	}
	value, ok = r.values[key]
	return value, ok, nil
}

// Path returns a path-valued configuration entry resolved against the root
// directory.
func (r *Room) Path(key string) (string, bool, error) {
	value, ok, err := r.Get(key)
	if err != nil || !ok {
		return "", ok, err
	}
	return resolve(r.root, value), true, nil
}

// Keys returns every configured key, sorted.
func (r *Room) Keys() ([]string, error) {
	if err := r.RequireActive(); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Set changes a configuration value and rewrites the configuration file.
// Unknown keys, "version", invalid values and values the file cannot hold
// are rejected with a warning and ok == false.
func (r *Room) Set(key, value string) (ok bool, err error) {
	if err := r.RequireActive(); err != nil {
		return false, err
	}
	v, known := r.vars[key]
	if !known {
		r.logger.Warn("cannot set unknown configuration key", "key", key)
		return false, nil
	}
	if key == "version" {
		r.logger.Warn("version cannot be changed", "key", key)
		return false, nil
	}
	normalized, err := v.normalize(value)
	if err != nil {
		r.logger.Warn("invalid configuration value", "key", key, "error", err)
		return false, nil
	}
	if _, err := confstore.Encode(normalized); err != nil {
		if errors.Is(err, confstore.ErrUnencodable) {
			r.logger.Warn("configuration value cannot be written", "key", key, "error", err)
			return false, nil
		}
		return false, err
	}

	settings := maps.Clone(r.values)
	settings[key] = normalized
	if err := r.save(settings); err != nil {
		return false, fmt.Errorf("set %s: %w", key, err)
	}
	r.values = settings
	r.logger.Debug("configuration updated", "key", key)
	return true, nil
}
