package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"

	"shop_back_end/internal/models"
)

// SendOrderConfirmation envoie le mail de confirmation après un checkout.
// Sans SMTP_HOST configuré, on ne fait rien : le mail est un plus, jamais
// une condition de succès de la commande.
func SendOrderConfirmation(to string, order models.Order, items []models.OrderItem) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@localhost"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		log.Println("❌ Adresse expéditeur invalide:", err)
		return
	}
	if err := msg.To(to); err != nil {
		log.Println("❌ Adresse destinataire invalide:", err)
		return
	}
	msg.Subject(fmt.Sprintf("Confirmation de votre commande n°%d", order.ID))
	msg.SetBodyString(mail.TypeTextHTML, OrderConfirmationHTML(order, items))

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Println("❌ Erreur création client SMTP:", err)
		return
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	if err := client.DialAndSend(msg); err != nil {
		log.Println("❌ Erreur envoi e-mail:", err)
	}
}

// OrderConfirmationHTML génère le HTML de confirmation de commande
func OrderConfirmationHTML(order models.Order, items []models.OrderItem) string {
	itemsHTML := ""
	for _, item := range items {
		lineTotal := item.PriceAtPurchase.Mul(decimal.NewFromInt(int64(item.Quantity)))
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s€</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s€</td>
			</tr>`, item.ProductID, item.Quantity, item.PriceAtPurchase.StringFixed(2), lineTotal.StringFixed(2))
	}

	total := models.Total(items)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Merci pour votre commande !</h2>
		<p>Bonjour,</p>
		<p>Votre commande n°%d a bien été enregistrée. Statut actuel : <strong>%s</strong>.</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Produit</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="font-size: 18px;"><strong>Total : %s€</strong></p>
		<p style="color: #777; font-size: 12px;">Cet e-mail est envoyé automatiquement, merci de ne pas y répondre.</p>
	</div>
</body>
</html>`, order.ID, order.Status, itemsHTML, total.StringFixed(2))
}
