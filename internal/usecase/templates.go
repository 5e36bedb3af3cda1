package usecase

import (
	"fmt"

	"natalia/config"
)

// Canned responses for the questions the club receives constantly. Text is
// kept in Spanish because that is the language members write in.

func signupFooter(c config.ContactConfig) string {
	return fmt.Sprintf(`📞 **WhatsApp:** %s
📧 **Email:** %s

🔥 **¡REALIZA TU INSCRIPCIÓN YA!**
👆 [Haz clic aquí para inscribirte por WhatsApp](%s)
💌 [Enviar correo electrónico](%s)`, c.WhatsApp, c.Email, c.WhatsAppLink, c.MailLink)
}

func enrollmentFlow(c config.ContactConfig) string {
	return fmt.Sprintf(`✅ **PERFECTO, ESTOS SON LOS PASOS PARA INSCRIBIRTE:**

1️⃣ **Actividad:** Ofrecemos clases de natación en la piscina olímpica de la Villa Olímpica de Montería.
Es un deporte de bajo impacto, ideal para la salud.

2️⃣ **Requisitos:**
• Aceptar términos y condiciones
• Firmar consentimiento informado
• Presentar certificado médico, si es necesario

3️⃣ **Matrícula:**
• Tiene vigencia de 1 año
• Solo se paga una vez al año
• Importante: No se devuelve el valor pagado

4️⃣ **Mensualidad:**
• Se paga por adelantado cada mes
• Solo puedes asistir si estás al día en el pago
• Tarifa pronto pago los primeros 5 dias del ciclo

📆 **¿Cómo es la política de devoluciones?**
🟡 Antes de la primera clase: 100%%
🟠 Después de la segunda clase: 50%%
🔴 Después de la tercera clase: No hay devolución

5️⃣ **Importante sobre el uso de la piscina**
La piscina es pública. El aporte mensual garantiza instructores calificados, no es el alquiler del espacio.

6️⃣ **¿Qué riesgos debo tener en cuenta?**
• Lesiones menores, ahogamiento, contacto con otros usuarios, clima
• Declaras estar en condiciones óptimas de salud
• Si representas a un menor, también asumes responsabilidad por él/ella

7️⃣ **¿Se toman fotos o videos?**
Sí. Autorizas su uso con fines deportivos y promocionales del club al aceptar los términos.

8️⃣ **¿Deseas continuar con tu inscripción?**

✅ **Sí, quiero inscribirme**
❌ **No, volver al inicio**
📩 **Contactar asesor humano para solicitar la documentación**

9️⃣ **¿Tienes dudas sobre nuestra política de reposición de clases?**
📋 Pregúntame específicamente sobre "política de reposición" o "reponer clases" para obtener información detallada.

%s`, signupFooter(c))
}

func childSchedule(c config.ContactConfig) string {
	return fmt.Sprintf(`🏊‍♀️ **HORARIOS PARA NIÑOS:**

**Martes y Jueves:**
• 4:00 PM a 5:00 PM
• 5:00 PM a 6:00 PM

**Sábados:**
• 8:00 AM a 9:00 AM
• 4:00 PM a 5:00 PM
• 5:00 PM a 6:00 PM

**Miércoles y Viernes:**
• 4:00 PM a 5:00 PM
• 5:00 PM a 6:00 PM

%s`, signupFooter(c))
}

func adultSchedule(c config.ContactConfig) string {
	return fmt.Sprintf(`🏊‍♂️ **HORARIOS PARA ADULTOS:**

**Martes y Jueves:**
• 5:00 AM a 6:00 AM
• 6:00 AM a 7:00 AM
• 7:00 AM a 8:00 AM
• 6:00 PM a 7:00 PM
• 7:00 PM a 8:00 PM

**Sábados:**
• 5:00 AM a 6:00 AM
• 6:00 AM a 7:00 AM
• 7:00 AM a 8:00 AM

**Miércoles y Viernes:**
• 6:00 PM a 7:00 PM

%s`, signupFooter(c))
}

func fullSchedule(c config.ContactConfig) string {
	return fmt.Sprintf(`📅 **HORARIOS COMPLETOS - CLUB DE NATACIÓN MNM:**

**MARTES Y JUEVES:**
• 5:00-8:00 AM (adultos)
• 4:00-6:00 PM (niños)
• 6:00-8:00 PM (adultos)

**SÁBADOS:**
• 5:00-8:00 AM (adultos)
• 8:00 AM-6:00 PM (niños y adultos)

**MIÉRCOLES Y VIERNES:**
• 4:00-6:00 PM (niños)
• 6:00-7:00 PM (adultos)

📍 Ubicación: %s

%s`, c.Location, signupFooter(c))
}

func priceList(c config.ContactConfig) string {
	return fmt.Sprintf(`💰 **PRECIOS CLUB DE NATACIÓN MNM:**

🏊‍♀️ **MENSUALIDADES:**
1. 1️⃣  vez por semana: $120,000
2. 2️⃣  veces por semana: $160,000
3. 3️⃣  veces por semana: $180,000

💡 **Tarifa con descuento pronto pago:** Los primeros 5 días del ciclo

📝 **Inscripción:** $40,000 (pago único)

%s`, signupFooter(c))
}

func whatToBring(c config.ContactConfig) string {
	return fmt.Sprintf(`🎒 **QUÉ TRAER A TU PRIMERA CLASE:**

✅ **Obligatorio:**
• Traje de baño deportivo
• Gorro de natación
• Gafas de natación
• Toalla

✅ **Opcional:**
• Chanclas antideslizantes

👶 **Edades:** Desde 5 años sin límite superior

%s`, signupFooter(c))
}

func teachingEmphasis(c config.ContactConfig) string {
	return fmt.Sprintf(`🎯 **ÉNFASIS DE NUESTRA ESCUELA:**

1. 🏊‍♀️ Desarrollo de habilidades acuáticas
2. 🏊‍♂️ Enseñanza de técnicas en los 4 estilos de natación
3. 📊 Sistema de evaluación progresivo por niveles (nivel basico, intermedio, avanzado y equipo)
4. 🏆 Programa de reconocimiento del Nadador del trimestre
5. 📈 Evaluación mensual del avance del nivel con puntaje que es enviado al grupo de Practicantes del Club
6. 💪 Entrenamiento para resistencia y velocidad
7. 👥 Natación para todas las edades
8. 🥇 Preparación para competencias
9. ⚡ Fomento de disciplina y trabajo en equipo
10. 🌱 Promoción de estilo de vida saludable

%s`, signupFooter(c))
}

func acceptedAges(c config.ContactConfig) string {
	return fmt.Sprintf(`👶 **EDADES ACEPTADAS:**

✅ Desde 5 años sin límite superior

🏊‍♀️ Tenemos horarios especializados para niños y adultos, en grupos segmentados para facilitar y promover el aprendizaje

%s`, signupFooter(c))
}

func contactInfo(c config.ContactConfig) string {
	return fmt.Sprintf(`📍 **INFORMACIÓN DE CONTACTO:**

🏊‍♀️ **%s**
📍 Dirección: %s
📞 Teléfono: %s
💬 WhatsApp: %s
📧 Email: %s

¡Te esperamos! 🌊`, c.ClubName, c.Location, c.WhatsApp, c.WhatsApp, c.Email)
}

func makeupPolicy(c config.ContactConfig) string {
	return fmt.Sprintf(`📋 **POLÍTICA DE REPOSICIÓN - MONTERÍA NATACIÓN MASTER**

✅ Entendemos que a veces surgen imprevistos. Por eso, puedes reponer una (1) clase por mes, y evaluamos cada caso según la justificación que nos compartas.

📅 Puedes tomar tu reposición en otro horario dentro del mismo mes, en grupos del mismo nivel y calendario, según disponibilidad de cupo. Si faltaste en la última semana del ciclo, ¡tranqui! tienes hasta 8 días del mes siguiente para recuperarla.

🔁 Ten en cuenta que las reposiciones no se acumulan ni se trasladan a otros meses.

🌧 Si la piscina se cierra por motivos externos, garantizamos las reposiciones que correspondan.

❌ Para cuidar la organización de nuestros grupos y ofrecerte una buena experiencia, no reponemos clases sin aviso previo.

📲 Escríbenos por WhatsApp oficial del club para gestionar tu reposición. ¡Estamos para ayudarte! 🏊‍♀️✨

📎 **Documento completo:** https://bit.ly/32J20r0

%s`, signupFooter(c))
}

func clubRules(c config.ContactConfig) string {
	return fmt.Sprintf(`📋 **INFORMACIÓN SOBRE REGLAMENTOS:**

Para información detallada sobre:
• Reglamentos del club
• Políticas de reposición
• Términos y condiciones
• Normas de convivencia

📞 Por favor contacta directamente al club:
WhatsApp: %s

Tenemos documentación completa disponible.`, c.WhatsApp)
}

func enrollmentInfo(c config.ContactConfig) string {
	return fmt.Sprintf(`📝 **PROCESO DE INSCRIPCIÓN:**

💰 **Costo de inscripción:** $40,000 (pago único)

📋 Para completar tu inscripción necesitas:
• Documentación personal
• Información médica básica
• Selección de horarios

📞 Para iniciar el proceso contactanos:
WhatsApp: %s

¡Te ayudaremos con todo el proceso, Bienvenido! 🏊‍♀️`, c.WhatsApp)
}

func documentAnswer(c config.ContactConfig, context string) string {
	return fmt.Sprintf(`📋 **Información encontrada en documentos del club:**

%s

%s`, context, signupFooter(c))
}

func genericAnswer(c config.ContactConfig) string {
	return fmt.Sprintf(`🏊‍♀️ **%s**

Lo siento, no tengo información específica sobre tu consulta en este momento.

📞 Para información detallada contacta directamente:
💬 WhatsApp: %s
📧 Email: %s
📍 %s

🔥 **¡REALIZA TU INSCRIPCIÓN YA!**
👆 [Haz clic aquí para inscribirte por WhatsApp](%s)
💌 [Enviar correo electrónico](%s)

¡Estaremos felices de ayudarte! 🌊`, c.ClubName, c.WhatsApp, c.Email, c.Location, c.WhatsAppLink, c.MailLink)
}
