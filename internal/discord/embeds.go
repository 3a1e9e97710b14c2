package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ilo80/esiee-plus-bot/internal/application"
	"github.com/ilo80/esiee-plus-bot/internal/timetable"
)

// Embed colors, one per situation.
const (
	colorInfo     = 0x0099FF
	colorError    = 0xF04747
	colorPing     = 0xF6CD55
	colorFree     = 0x2ECC71
	colorLocked   = 0xE69138
	colorOccupied = 0xE74C3C
)

// User-facing copy, kept in French as the product ships.
const (
	msgInvalidDate       = "Il semblerait que la date renseignée ne soit pas valide !\nVeuillez renseigner une date au format `jj/mm/aaaa`."
	msgInvalidTime       = "Il semblerait que l'heure de début ou de fin renseignée ne soit pas valide !\nVeuillez renseigner une heure au format `hh:mm`."
	msgInvalidEpis       = "Il semblerait que l'épis renseigné ne soit pas valide !\nVeuillez renseigner un numéro d'épis entre 0 et 6."
	msgStartAfterEnd     = "Il semblerait que l'heure de début soit supérieure ou égale à l'heure de fin !\nVeuillez renseigner une heure de début inférieure à l'heure de fin."
	msgNoRoomsAvailable  = "Aucune salle n'est disponible à cette période !\nVeuillez réessayer avec une autre période."
	msgInvalidClassroom  = "Il semblerait que la salle renseignée ne soit pas valide !\nVeuillez renseigner un nom de salle valide."
	msgUnexpectedFailure = "Uh ! Oh ! Il s'emblerait qu'une erreur soit survenue lors de l'exécution de la commande !"
)

// validationMessage picks the user copy for the first recognized field of a
// validation error. Field priority follows the original validation order.
func validationMessage(vErr *application.ValidationError) string {
	if vErr == nil {
		return msgUnexpectedFailure
	}
	for _, field := range []string{"date", "debut", "fin", "epis", "periode", "salle"} {
		if _, ok := vErr.FieldErrors[field]; !ok {
			continue
		}
		switch field {
		case "date":
			return msgInvalidDate
		case "debut", "fin":
			return msgInvalidTime
		case "epis":
			return msgInvalidEpis
		case "periode":
			return msgStartAfterEnd
		case "salle":
			return msgInvalidClassroom
		}
	}
	return msgUnexpectedFailure
}

func errorEmbed(message string, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Erreur !",
		Description: message,
		Color:       colorError,
		Timestamp:   now.Format(time.RFC3339),
	}
}

func pingEmbed(latency time.Duration, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Pong ! 🏓",
		Description: fmt.Sprintf("**Latence** : %dms !", latency.Milliseconds()),
		Color:       colorPing,
		Timestamp:   now.Format(time.RFC3339),
	}
}

// searchResultEmbed renders the grouped free rooms, one inline field per wing.
func searchResultEmbed(result application.SearchResult, now time.Time) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(result.Groups))
	for _, group := range result.Groups {
		lines := make([]string, 0, len(group.Rooms))
		for _, room := range group.Rooms {
			lines = append(lines, "- "+room)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Épis %d", group.Epis),
			Value:  strings.Join(lines, "\n"),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Salles libres le %s de %s à %s",
			result.Date, result.Window.Start, result.Window.End),
		Fields:    fields,
		Color:     colorInfo,
		Timestamp: now.Format(time.RFC3339),
	}
}

func boardEmoji(board string) string {
	switch board {
	case "Tableau blanc":
		return "⬜"
	case "Tableau noir":
		return "⬛"
	default:
		return "❓"
	}
}

func capacityEmoji(tier timetable.CapacityTier) string {
	switch tier {
	case timetable.TierSmall:
		return "👥"
	case timetable.TierMedium:
		return "🧑‍🤝‍🧑"
	default:
		return "🏢"
	}
}

// statusEmbed renders one room's situation: status line, remaining
// free/occupied duration, board, equipment and capacity.
func statusEmbed(status application.RoomStatusResult, now time.Time) *discordgo.MessageEmbed {
	var description strings.Builder

	switch {
	case status.Locked && status.Available:
		description.WriteString("🔐 **Statut** : Verrouillée\n")
	case status.Available:
		description.WriteString("🟢 **Statut** : Disponible\n")
	default:
		description.WriteString("🔴 **Statut** : Occupée\n")
	}

	if !status.Locked {
		if status.Available {
			fmt.Fprintf(&description, "🕑 **Durée de disponibilité** : %s\n", status.FreeFor)
		} else {
			fmt.Fprintf(&description, "🕑 **Salle disponible dans** : %s\n", status.OccupiedFor)
		}
	}

	fmt.Fprintf(&description, "%s **Tableau** : %s\n", boardEmoji(status.Board), status.Board)

	if len(status.Equipment) > 0 {
		fmt.Fprintf(&description, "🖨️ **Equipements** : %s\n", strings.Join(status.Equipment, ", "))
	}

	fmt.Fprintf(&description, "%s **Capacité** : %d personnes", capacityEmoji(status.Tier), status.Capacity)

	color := colorFree
	switch {
	case !status.Available:
		color = colorOccupied
	case status.Locked:
		color = colorLocked
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Statut de la salle %s", status.Name),
		Description: description.String(),
		Color:       color,
		Timestamp:   now.Format(time.RFC3339),
	}
}
