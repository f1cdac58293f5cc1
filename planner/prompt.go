// ABOUTME: Prompt construction for plan generation
// ABOUTME: States the exact JSON contract and embeds the intent fields
package planner

import (
	"fmt"
	"strings"

	"github.com/planforge/planforge/models"
)

const planJSONShape = `{
  "titulo": string,
  "descripcion": string,
  "fecha_inicio": "YYYY-MM-DD",
  "fecha_fin": "YYYY-MM-DD",
  "duracion_semanas": number,
  "personal": [string],
  "dominio": string,
  "tareas": [
    {
      "id": string,
      "nombre": string,
      "descripcion": string,
      "prioridad": "high" | "medium" | "low",
      "responsable": string,
      "fecha_inicio": "YYYY-MM-DD",
      "fecha_fin": "YYYY-MM-DD",
      "hora_inicio": "HH:MM",
      "hora_fin": "HH:MM",
      "duracion_horas": number,
      "dependencias": [string],
      "tipo": "task",
      "estado": "pending"
    }
  ],
  "cronograma_diario": { "YYYY-MM-DD": [string] },
  "eventos": [
    {
      "titulo": string,
      "descripcion": string,
      "inicio": "YYYY-MM-DDTHH:MM:SS-05:00",
      "fin": "YYYY-MM-DDTHH:MM:SS-05:00",
      "responsable": string,
      "tipo": "task" | "meeting" | "milestone",
      "tarea_relacionada": string
    }
  ],
  "carga_semanal": { "person name": number },
  "riesgos": [
    {
      "descripcion": string,
      "probabilidad": "high" | "medium" | "low",
      "mitigacion": string,
      "responsable": string
    }
  ],
  "resumen_estrategia": string
}`

// BuildSystemPrompt returns the system instruction for plan generation.
func BuildSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a project planning engine. You produce complete, realistic project plans.\n\n")
	b.WriteString("You must respond with a single JSON object exactly matching this shape:\n\n")
	b.WriteString(planJSONShape)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- Respond with JSON only. No prose before or after the object.\n")
	b.WriteString("- Do not wrap the JSON in markdown code fences.\n")
	b.WriteString("- Do not emit <think>, <thinking> or <reasoning> tags.\n")
	b.WriteString("- All dates are YYYY-MM-DD; event timestamps are ISO-8601 with an explicit offset.\n")
	b.WriteString("- Every task id referenced in dependencias or tarea_relacionada must exist in tareas.\n")
	return b.String()
}

// BuildUserPrompt embeds the intent fields into the generation request.
func BuildUserPrompt(intent models.ProjectIntent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a project plan for the following project.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", intent.Title)
	fmt.Fprintf(&b, "Description: %s\n", intent.Description)
	fmt.Fprintf(&b, "Start date: %s\n", intent.StartDate)
	fmt.Fprintf(&b, "Duration: %d weeks\n", intent.DurationWeeks)
	fmt.Fprintf(&b, "Available personnel: %s\n", intent.Personnel)
	fmt.Fprintf(&b, "Domain: %s\n", intent.Domain)
	fmt.Fprintf(&b, "Tasks to resolve: %s\n", intent.Tasks)
	fmt.Fprintf(&b, "Priorities: %s\n", intent.Priorities)
	fmt.Fprintf(&b, "Budget: %s\n", intent.Budget)
	if intent.Constraints != "" {
		fmt.Fprintf(&b, "Constraints: %s\n", intent.Constraints)
	}
	b.WriteString("\nRespond with the JSON object only.")
	return b.String()
}
