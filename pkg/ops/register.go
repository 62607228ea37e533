package ops

import (
	"github.com/costaindustries-source/mac-cleaner/pkg/registry"
)

// The catalogue. Declaration order is execution order: the
// network-dependent update check first, the connectivity-severing network
// reset last, sudo-heavy high-risk rebuilds in between.
func init() {
	registry.MustRegister(softwareUpdates{})
	registry.MustRegister(userCaches{})
	registry.MustRegister(browserCaches{})
	registry.MustRegister(userLogs{})
	registry.MustRegister(trash{})
	registry.MustRegister(homebrewCleanup{})
	registry.MustRegister(systemCaches{})
	registry.MustRegister(sqliteVacuum{})
	registry.MustRegister(dnsFlush{})
	registry.MustRegister(memoryPurge{})
	registry.MustRegister(maintenanceScripts{})
	registry.MustRegister(launchServicesRebuild{})
	registry.MustRegister(spotlightRebuild{})
	registry.MustRegister(kernelCaches{})
	registry.MustRegister(networkReset{})
}
