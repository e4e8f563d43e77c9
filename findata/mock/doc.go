// Package mock provides a scripted test double for the findata package.
package mock
