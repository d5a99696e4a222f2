package cmd

// Built-in apps available to INSTALLED_APPS.
import (
	_ "appserve/feature/diffsettings"
	_ "appserve/feature/health"
)
