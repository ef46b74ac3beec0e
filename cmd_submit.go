package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"district-scheduler/pkg/controller"
	"district-scheduler/pkg/ui"
)

var errSubmitFailed = errors.New("submission not sent")

var submitFlags struct {
	manager     string
	districts   []string
	name        string
	phone       string
	countryCode string
	date        string
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate and send one submission from flags",
	Long: `Fills the form from flags, runs the same checks as the web form and
posts the result once to the collection endpoint.

Example:
  district-scheduler submit --manager "Rohit Kumar" --district Nalanda \
    --name "A. Singh, Supervisor" --phone 9876543210 --date 2026-10-20`,
	RunE: runSubmit,
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitFlags.manager, "manager", "", "manager name")
	f.StringArrayVar(&submitFlags.districts, "district", nil, "district to include (repeatable)")
	f.StringVar(&submitFlags.name, "name", "", "name with designation")
	f.StringVar(&submitFlags.phone, "phone", "", "10 digit phone number")
	f.StringVar(&submitFlags.countryCode, "country-code", "", "country code prefix (default from config)")
	f.StringVar(&submitFlags.date, "date", "", "schedule date, YYYY-MM-DD")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	form := ui.NewForm(a.cfg.DefaultCountryCode)
	ctrl := controller.New(form.Controls(), a.directory, a.validator, a.submissions,
		controller.WithLogger(a.logger),
		controller.WithDefaultCountryCode(a.cfg.DefaultCountryCode),
	)

	form.Manager.SetValue(submitFlags.manager)
	ctrl.HandleManagerChange()
	form.Districts.Check(submitFlags.districts...)
	form.Name.SetValue(submitFlags.name)
	form.Phone.SetValue(submitFlags.phone)
	ctrl.HandlePhoneInput()
	if submitFlags.countryCode != "" {
		form.CountryCode.SetValue(submitFlags.countryCode)
	}
	form.ScheduleDate.SetValue(submitFlags.date)

	outcome := ctrl.HandleSubmit(cmd.Context())
	switch outcome {
	case controller.OutcomeSubmitted:
		fmt.Fprintln(cmd.OutOrStdout(), form.Message.Text)
		return nil
	case controller.OutcomeInvalid:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s (--%s)\n", form.Alerts.Last(), flagFor(form.Focus.Current()))
	default:
		fmt.Fprintln(cmd.ErrOrStderr(), form.Message.Text)
	}
	return errSubmitFailed
}

func flagFor(controlID string) string {
	switch controlID {
	case ui.IDDistricts:
		return "district"
	case ui.IDScheduleDate:
		return "date"
	default:
		return controlID
	}
}
