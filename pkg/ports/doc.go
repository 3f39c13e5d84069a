/*
Package ports defines the driven ports (interfaces) for the dashwright core.

The content tree never performs I/O itself; data access, chart rendering,
artifact caching and site generation are all collaborator concerns behind
these interfaces, so the core can be exercised with in-memory fakes and the
adapters can be swapped without touching tree logic.
*/
package ports
