// Package server holds configuration for the HTTP trigger mode.
package server
