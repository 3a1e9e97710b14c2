package discord

import "github.com/bwmarrin/discordgo"

const (
	commandPing   = "ping"
	commandSearch = "recherche_salles"
	commandStatus = "statut_salle"
)

// commandDefinitions declares the guild slash commands the bot registers on
// startup. Names and descriptions are the product's French surface.
func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandPing,
			Description: "Renvoit la latence du bot ! 🏓",
		},
		{
			Name:        commandSearch,
			Description: "Trouves des salles libres sur une période donnée ! 🚪",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "La date à laquelle tu veux trouver des salles libres",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "debut",
					Description: "L'heure de début de la période",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "fin",
					Description: "L'heure de fin de la période",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "epis",
					Description: "L'épis dans lequel tu veux faire la recherche",
				},
			},
		},
		{
			Name:        commandStatus,
			Description: "Affiche le statut d'une salle de l'ESIEE ! 🟢",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "salle",
					Description: "Le nom de la salle dont tu veux connaître le statut",
					Required:    true,
				},
			},
		},
	}
}
