// Package entities contains core business entities.
package entities

// ApplicationPreview composes one application with its full roster.
// The two reads behind it are independent queries, so the snapshot is
// read-committed, not serializable.
type ApplicationPreview struct {
	Application Application
	Members     []TeamMember
}
