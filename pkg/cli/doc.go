// Package cli implements the ecinv command-line interface.
//
// # Commands
//
// report - query and render the cluster inventory:
//
//	ecinv report --region us-east-1 [--engines redis,valkey,memcached]
//	  [--cluster "prod-*"] [--fields all] [--format csv|markdown|json|yaml]
//	  [--output FILE]
//
// fields - list the report columns available to --fields.
//
// # Configuration
//
// Flags may be pinned in $HOME/.ecinv.yaml (or --config). Precedence is
// flag, then environment variable, then config file, then built-in
// default. Credential and profile resolution is delegated entirely to
// the AWS SDK's shared config chain.
package cli
