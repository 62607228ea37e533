package ops

import (
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// dnsFlush drops the DNS cache and nudges mDNSResponder to reload.
type dnsFlush struct{}

func (dnsFlush) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:              "dns-flush",
		Description:     "Flush the DNS cache and restart mDNSResponder",
		Risk:            types.RiskLow,
		Category:        "network",
		NeedsPrivileges: true,
	}
}

func (dnsFlush) Execute(ctx *types.OperationContext) error {
	if _, err := run(ctx, true, "dscacheutil", "-flushcache"); err != nil {
		ctx.Errorf("DNS cache flush failed: %v", err)
		return err
	}
	if _, err := run(ctx, true, "sudo", "killall", "-HUP", "mDNSResponder"); err != nil {
		// the flush succeeded; a missing responder process is not fatal
		ctx.Warnf("could not signal mDNSResponder: %v", err)
	}
	return nil
}

// networkReset flushes the routing table and bounces the primary
// interface. This severs connectivity, which is why the catalogue
// declares it last: every network-dependent operation has already run.
type networkReset struct{}

func (networkReset) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:              "network-reset",
		Description:     "Flush routes and bounce en0 (drops connectivity briefly)",
		Risk:            types.RiskHigh,
		Category:        "network",
		NeedsPrivileges: true,
	}
}

func (networkReset) Execute(ctx *types.OperationContext) error {
	ctx.Progress.Begin(3)

	ctx.Progress.Advance("flush routes")
	if _, err := run(ctx, true, "sudo", "route", "-n", "flush"); err != nil {
		ctx.Errorf("route flush failed: %v", err)
		return err
	}

	ctx.Progress.Advance("en0 down")
	if _, err := run(ctx, true, "sudo", "ifconfig", "en0", "down"); err != nil {
		ctx.Errorf("could not bring en0 down: %v", err)
		return err
	}

	// bringing the interface back up is required even if the run is being
	// cancelled; never leave the machine offline
	ctx.Progress.Advance("en0 up")
	if _, err := run(ctx, true, "sudo", "ifconfig", "en0", "up"); err != nil {
		ctx.Errorf("could not bring en0 back up: %v", err)
		return err
	}
	return nil
}
