package vocab

// Skills is the canonical skill vocabulary searched for in CV text, mixing
// technical and soft skills. Matches are whole-word and case-insensitive; the
// extractor reports the canonical spelling listed here, never the raw text.
var Skills = []string{
	"Python", "JavaScript", "React", "Node.js", "SQL", "Git", "Docker", "AWS",
	"Azure", "Machine Learning", "Data Analysis", "Comunicación", "Liderazgo",
	"Trabajo en equipo", "Resolución de problemas", "Excel", "Word",
	"PowerPoint", "Marketing Digital", "Ventas", "Atención al cliente",
	"Contabilidad", "Finanzas", "Java", "C++", "C#", "Scrum", "Agile", "Linux",
	"Windows Server", "Networking", "SEO", "SEM", "UX/UI", "Diseño Gráfico",
	"Autocad", "SolidWorks", "Mantenimiento", "Producción", "Logística",
	"Inventario", "SAP", "CRM", "Negociación", "Project Management",
	"Power BI", "Tableau",
}
