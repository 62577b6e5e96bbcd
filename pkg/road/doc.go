// Package road models the endless multi-lane road the cars drive on.
package road
