package site

// behaviorScript is the generated site's behavior layer. It is identical for
// every theme: smooth in-page scrolling, click-to-select on any element
// carrying a data-component tag, and an edit panel that posts the selected
// element's markup plus free-text instructions to /modify-component and swaps
// the element in place on success.
const behaviorScript = `(function () {
  'use strict';

  // Smooth scrolling for in-page navigation.
  document.querySelectorAll('a[href^="#"]').forEach(function (anchor) {
    anchor.addEventListener('click', function (event) {
      var target = document.querySelector(anchor.getAttribute('href'));
      if (target) {
        event.preventDefault();
        target.scrollIntoView({ behavior: 'smooth', block: 'start' });
      }
    });
  });

  var selected = null;

  function deselect() {
    if (selected) {
      selected.classList.remove('component-selected');
      selected = null;
    }
    var panel = document.getElementById('edit-panel');
    if (panel) {
      panel.remove();
    }
  }

  function notify(message, isError) {
    var note = document.createElement('div');
    note.className = 'edit-notification' + (isError ? ' edit-notification-error' : '');
    note.textContent = message;
    document.body.appendChild(note);
    setTimeout(function () {
      note.remove();
    }, 3000);
  }

  function openEditPanel(element) {
    var panel = document.createElement('div');
    panel.id = 'edit-panel';
    panel.innerHTML =
      '<h4>Edit ' + element.getAttribute('data-component') + '</h4>' +
      '<textarea id="edit-instructions" rows="3" placeholder="Describe your changes..."></textarea>' +
      '<div class="edit-panel-actions">' +
      '<button id="edit-apply">Apply</button>' +
      '<button id="edit-cancel">Cancel</button>' +
      '</div>';
    document.body.appendChild(panel);

    panel.querySelector('#edit-cancel').addEventListener('click', deselect);
    panel.querySelector('#edit-apply').addEventListener('click', function () {
      var instructions = panel.querySelector('#edit-instructions').value.trim();
      if (!instructions) {
        notify('Please describe the change first', true);
        return;
      }
      applyEdit(element, instructions);
    });
  }

  function applyEdit(element, instructions) {
    fetch('/modify-component', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({
        component_html: element.outerHTML,
        instructions: instructions,
        component_type: element.getAttribute('data-component')
      })
    })
      .then(function (response) {
        return response.json().then(function (body) {
          if (!response.ok) {
            throw new Error(body.error || 'edit failed');
          }
          return body;
        });
      })
      .then(function (body) {
        element.outerHTML = body.modified_html;
        deselect();
        notify('Component updated', false);
      })
      .catch(function (err) {
        notify('Edit failed: ' + err.message, true);
      });
  }

  document.querySelectorAll('[data-component]').forEach(function (element) {
    element.addEventListener('click', function (event) {
      event.stopPropagation();
      if (selected === element) {
        return;
      }
      deselect();
      selected = element;
      element.classList.add('component-selected');
      openEditPanel(element);
    });
  });
})();
`
