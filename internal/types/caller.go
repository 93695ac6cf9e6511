package types

// CallerContext identifies the tenant a request acts as. It is produced once
// by the bearer-auth middleware and threaded explicitly into every service
// call; nothing else resolves identity.
type CallerContext struct {
	TenantID        string
	IsDefaultTenant bool
}
