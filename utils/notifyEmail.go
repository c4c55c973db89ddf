package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendConsultationResponseEmail notifies a patient that a doctor responded
// to their consultation request. Delivery is best-effort: callers log the
// returned error and never fail the triggering write on it.
func SendConsultationResponseEmail(email, doctorName, status, response string) error {
	subject := fmt.Sprintf("Your consultation request was %s", status)
	body := fmt.Sprintf("Dr. %s has %s your consultation request.\n\nMessage from the doctor:\n%s\n", doctorName, status, response)

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Consultation Update</title>
		<style>
			body {
				font-family: Arial, sans-serif;
				background-color: #f4f4f4;
				margin: 0;
				padding: 0;
			}
			.container {
				background-color: #ffffff;
				margin: 20px auto;
				padding: 20px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
				max-width: 600px;
			}
			h1 {
				color: #333333;
			}
			p {
				color: #666666;
			}
			.message {
				font-style: italic;
				color: #007bff;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<h1>Consultation Update</h1>
			<p>Dr. ` + doctorName + ` has <strong>` + status + `</strong> your consultation request.</p>
			<p class="message">` + response + `</p>
			<p>Log in to TeleMed to see the details.</p>
		</div>
	</body>
	</html>
	`

	return sendEmail(email, subject, body, htmlBody)
}

// SendPrescriptionEmail notifies a patient that a prescription was issued,
// optionally mentioning the proposed follow-up slot.
func SendPrescriptionEmail(email, doctorName, slotDate, slotTime string) error {
	subject := "A new prescription is ready for you"
	body := fmt.Sprintf("Dr. %s has issued a prescription for you.\n", doctorName)
	slotLine := ""
	if slotDate != "" && slotTime != "" {
		slotLine = fmt.Sprintf("A follow-up consultation slot is proposed for %s at %s. Please confirm or decline it in TeleMed.", slotDate, slotTime)
		body += slotLine + "\n"
	}

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>New Prescription</title>
		<style>
			body {
				font-family: Arial, sans-serif;
				background-color: #f4f4f4;
				margin: 0;
				padding: 0;
			}
			.container {
				background-color: #ffffff;
				margin: 20px auto;
				padding: 20px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
				max-width: 600px;
			}
			h1 {
				color: #333333;
			}
			p {
				color: #666666;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<h1>New Prescription</h1>
			<p>Dr. ` + doctorName + ` has issued a prescription for you.</p>
			<p>` + slotLine + `</p>
			<p>Log in to TeleMed to view it.</p>
		</div>
	</body>
	</html>
	`

	return sendEmail(email, subject, body, htmlBody)
}

func sendEmail(to, subject, body, htmlBody string) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", htmlBody)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT value: %v", err)
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
