// Package common holds small generic helpers shared across the generator.
package common
