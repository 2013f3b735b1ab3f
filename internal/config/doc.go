// Package config provides configuration loading, merging, and validation
// facilities for the project-pilot client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that provides a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory is loaded
//     into the environment first, without overriding variables already set)
//  3. JSON config file (path taken from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
