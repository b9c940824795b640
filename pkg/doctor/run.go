package doctor

import (
	"context"

	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

// Run executes the auth, DVC and MLflow checks in that order and prints a summary.
// The summary's success line appears only when all three pass.
func (d *Doctor) Run(ctx context.Context) Report {
	d.out.Banner("GCP Authentication Fix Script")
	d.out.Rule()

	var report Report
	report.Add(CheckAuth, d.CheckAuth(ctx))
	report.Add(CheckDVC, d.CheckDVC(ctx))
	report.Add(CheckMLflow, d.CheckMLflow(ctx))

	d.out.Blank()
	d.out.Rule()
	if report.OK() {
		d.out.Celebrate("All systems working! Your GCP integration is ready.")
	} else {
		d.out.Error("Some issues found. Check the output above for details.")
		log.Debug("Checks failed", "checks", report.Failed())
	}

	d.out.Blank()
	d.out.Tip("If you still have issues, your authentication is already configured.")
	d.out.Println("   The gcloud command may be hanging due to browser interaction.")
	d.out.Println("   Your current setup should work for MLflow and DVC operations.")

	return report
}
