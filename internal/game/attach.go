package game

import "github.com/arcanum-dev/arcanum-engine/internal/log"

// isLegalAttachHost reports whether host is a legal attachment target for
// the given aura/equipment, per the card's AttachSpec.
func (d *Duel) isLegalAttachHost(attachment *CardInstance, host *CardInstance) bool {
	if host.Zone != ZoneBattlefield {
		return false
	}
	if attachment.Card.AttachSpec == nil {
		return true
	}
	return attachment.Card.AttachSpec(d, host)
}

// attachPermanent attaches an aura/equipment to a host, replacing any
// previous attachment.
func (d *Duel) attachPermanent(attachment *CardInstance, host *CardInstance) {
	gs := d.State
	if attachment.AttachedTo != nil {
		d.detachPermanent(attachment, "reattached")
	}
	attachment.AttachedTo = host
	host.Attachments = append(host.Attachments, attachment)
	d.log(log.NewAttachEvent(gs.Turn, gs.Phase.String(), attachment.Controller, attachment.Card.Name, host.Card.Name))
}

// detachPermanent removes the attachment link in both directions. Equipment
// stays on the battlefield unattached; auras are expected to be destroyed
// by the caller (SBA) immediately after, since an unattached aura is never
// legal to remain.
func (d *Duel) detachPermanent(attachment *CardInstance, reason string) {
	gs := d.State
	host := attachment.AttachedTo
	if host == nil {
		return
	}
	for i, a := range host.Attachments {
		if a.ID == attachment.ID {
			host.Attachments = append(host.Attachments[:i], host.Attachments[i+1:]...)
			break
		}
	}
	attachment.AttachedTo = nil
	host.RemoveModifiersBySource(attachment.ID)
	d.log(log.NewDetachEvent(gs.Turn, gs.Phase.String(), attachment.Controller, attachment.Card.Name, reason))
}

// detachAllFrom clears every attachment relationship involving ci,
// whichever direction it participates in. Called when ci leaves the
// battlefield.
func (d *Duel) detachAllFrom(ci *CardInstance) {
	if ci.AttachedTo != nil {
		d.detachPermanent(ci, "host left the battlefield")
	}
	for _, a := range append([]*CardInstance(nil), ci.Attachments...) {
		d.detachPermanent(a, "attachment's host left the battlefield")
	}
}
