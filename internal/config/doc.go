// Package config loads optional tool-command overrides for pyfmt.
//
// pyfmt reads no configuration unless a file is named with --config.
// The file may be YAML (.yaml, .yml) or JSON with comments (.json, .jsonc):
//
//	# pyfmt.yaml
//	isort:
//	  command: /opt/venv/bin/isort
//	black:
//	  command: /opt/venv/bin/black
//
// Only the executables can be configured. The flags each tool receives are
// fixed by package toolchain.
package config
