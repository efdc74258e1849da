package notify

import "fmt"

// VerificationEmail renders the HTML body of the email-verification message.
// The link points at the backend verify endpoint with the token attached.
func VerificationEmail(name, link string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Verify Your Email</title>
</head>
<body style="margin: 0; padding: 0; font-family: sans-serif; background-color: #f4f4f4;">
  <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%%">
    <tr>
      <td align="center" style="padding: 20px 0 30px 0;">
        <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="600" style="border: 1px solid #cccccc; background-color: #ffffff;">
          <tr>
            <td style="padding: 40px 30px;">
              <h2 style="font-size: 24px; margin: 0 0 20px 0; color: #333333; text-align: center;">Confirm Your Email Address</h2>
              <p style="margin: 0 0 15px 0; font-size: 16px; color: #555555;">Hello %s,</p>
              <p style="margin: 0 0 25px 0; font-size: 16px; color: #555555;">Thank you for signing up! Please click the button below to confirm your email and activate your account.</p>
              <table role="presentation" border="0" cellpadding="0" cellspacing="0" style="width: 100%%;">
                <tr>
                  <td align="center" style="padding: 0 0 30px 0;">
                    <a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #6366f1; color: #ffffff; border-radius: 6px; text-decoration: none; font-weight: bold; font-size: 16px;">Verify Email</a>
                  </td>
                </tr>
              </table>
              <p style="margin: 0 0 10px 0; font-size: 14px; color: #888888;">If the button above doesn't work, copy and paste the following link into your browser:</p>
              <p style="margin: 0 0 20px 0; font-size: 14px; color: #333333; word-break: break-all;">%s</p>
              <p style="margin: 0; font-size: 14px; color: #e11d48;">Note: this link will expire in 24 hours.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, name, link, link)
}
