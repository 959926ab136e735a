// Package model holds the read-only GitHub views the gate decides on.
package model
