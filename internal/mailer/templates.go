package mailer

import "html/template"

// Templates are rendered with html/template so user-supplied fields are
// escaped before they reach a mail body.

var reservationConfirmationTmpl = template.Must(template.New("reservation-confirmation").Parse(`
<h2>Potvrzení rezervace</h2>
<p>Dobrý den, {{.Name}},</p>
<p>děkujeme za Vaši rezervaci sdílené kanceláře Příčná. Shrnutí:</p>
<ul>
  <li>Datum: {{.Date}}</li>
  <li>Čas: {{.Time}}</li>
  <li>Délka: {{.Duration}}</li>
  <li>Cena: {{.TotalPrice}}</li>
</ul>
{{if .Company}}<p>Společnost: {{.Company}}</p>{{end}}
<p>Platba probíhá na recepci v den rezervace.</p>
<p>Těšíme se na Vás,<br>Příčná Offices</p>
`))

var reservationNotificationTmpl = template.Must(template.New("reservation-notification").Parse(`
<h2>Nová rezervace #{{.ID}}</h2>
<ul>
  <li>Jméno: {{.Name}}</li>
  <li>Email: {{.Email}}</li>
  <li>Telefon: {{.Phone}}</li>
  {{if .Company}}<li>Společnost: {{.Company}}</li>{{end}}
  <li>Datum: {{.Date}}</li>
  <li>Čas: {{.Time}}</li>
  <li>Délka: {{.Duration}}</li>
  <li>Cena: {{.TotalPrice}}</li>
</ul>
{{if .Message}}<p>Zpráva: {{.Message}}</p>{{end}}
`))

var reservationCancellationTmpl = template.Must(template.New("reservation-cancellation").Parse(`
<h2>Zrušení rezervace</h2>
<p>Dobrý den, {{.Name}},</p>
<p>Vaše rezervace na {{.Date}} ({{.Time}}) byla zrušena.</p>
<p>V případě dotazů nás neváhejte kontaktovat.</p>
<p>Příčná Offices</p>
`))

var inquiryConfirmationTmpl = template.Must(template.New("inquiry-confirmation").Parse(`
<h2>Děkujeme za Vaši zprávu</h2>
<p>Dobrý den, {{.Name}},</p>
<p>Vaši poptávku jsme přijali a ozveme se Vám co nejdříve.</p>
<p>Příčná Offices</p>
`))

var inquiryNotificationTmpl = template.Must(template.New("inquiry-notification").Parse(`
<h2>Nová poptávka: {{.TypeLabel}}</h2>
<ul>
  <li>Jméno: {{.Name}}</li>
  <li>Email: {{.Email}}</li>
  {{if .Phone}}<li>Telefon: {{.Phone}}</li>{{end}}
  {{if .ItemName}}<li>Položka: {{.ItemName}}</li>{{end}}
  {{if .Service}}<li>Služba: {{.Service}}</li>{{end}}
</ul>
<p>Zpráva: {{.Message}}</p>
`))
